// Package semports provides typed ports for behavior tree nodes and the
// string conversions that turn configuration text into typed values.
//
// # Overview
//
// A node type declares the ports it reads and writes. Each port has a name,
// a direction, a bound type and optionally a description and a default
// value. Configuration documents bind text to those ports; the text is
// converted into a value of the bound type when the node asks for it.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│       component / nodes             │  Manifests, attribute
//	│  (provided ports, validation)       │  validation, tag schemas
//	└─────────────────────────────────────┘
//	           ↓ declares
//	┌─────────────────────────────────────┐
//	│              port                   │  Port descriptors,
//	│   (Info, List, Create, Input...)    │  name rules
//	└─────────────────────────────────────┘
//	           ↓ converts with
//	┌─────────────────────────────────────┐
//	│       convert / value               │  Converter registry,
//	│   (FromString, ToStr, Value)        │  erased values
//	└─────────────────────────────────────┘
//
// # Packages
//
//   - value: type-erased Value that only yields its original type
//   - convert: registry of text converters and renderers, built-in conversions
//   - port: port descriptors, declaration helpers and port lists
//   - component: provided-ports introspection, manifests, attribute validation
//   - nodes: manifests of the built-in action, control and decorator nodes
//   - types: node type, node status and port direction enumerations
//   - errors: classified error wrapping shared by every package
//   - metric: prometheus instrumentation of conversions and registries
//   - config: layered YAML configuration of the portschema tool
//
// # Quick Start
//
// Declare ports for a node type:
//
//	type MoveBase struct{}
//
//	func (MoveBase) ProvidedPorts() (port.List, error) {
//		return port.NewBuilder().
//			Add(port.Input[Pose2D]("goal", "Target pose")).
//			Add(port.OutputWithDefault("speed", 0.5, "Commanded speed")).
//			Build()
//	}
//
// Register a converter for a custom type before declaring ports that use it:
//
//	convert.Register(convert.Default(), parsePose2D)
//
// Validate configuration text against the declared ports:
//
//	ports, err := component.ProvidedPorts[MoveBase]()
//	verrs := component.ValidateAttributes(ports, map[string]string{"goal": "1;2;0.5"})
//
// # Tooling
//
// The portschema command exports a JSON Schema per registered node type and
// checks YAML attribute documents:
//
//	portschema --config=portschema.yaml export
//	portschema check tree.yaml
package semports
