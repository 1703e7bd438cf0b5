// Package component discovers and catalogs the port schemas of component types.
//
// # Capability detection
//
// A component type opts into port declaration by implementing Provider on its
// value or pointer receiver:
//
//	type MoveBase struct{}
//
//	func (MoveBase) ProvidedPorts() (port.List, error) {
//	    return port.NewBuilder().
//	        Add(port.Input[Pose2D]("goal", "target pose")).
//	        Build()
//	}
//
// ProvidedPorts[C] calls it on a zero value. Types without the capability
// simply have no ports; this is not an error. Describer works the same way
// for a static description.
//
// Components that should resolve converters from a program's own
// conversion registry implement RegistryProvider as well. A Registry built
// WithConversions passes that registry to every RegisterType call.
//
// # Struct tags
//
// GeneratePorts builds a port list from `port` tags, so configuration structs
// can double as their own schema:
//
//	type SleepConfig struct {
//	    Msec uint `json:"msec" port:"input,description:Milliseconds to wait"`
//	}
//
// # Manifests
//
// Registry stores one Manifest per component ID. Consumers that read
// configuration documents validate attribute text against a manifest's ports
// with ValidateAttributes and turn it into typed values with
// ResolveAttributes, or do both in one pass with CheckAttributes. Require
// fails with errors.ErrNotRegistered for an unknown ID. Attribute values written as {key} are references to
// shared storage and are passed over.
package component
