// Package port declares the named, directional, typed slots a component
// exposes to its configuration.
//
// A port is declared once, at schema time, by type parameter:
//
//	ports, err := port.NewBuilder().
//	    Add(port.InputWithDefault("speed", 10, "cruise speed")).
//	    Add(port.Input[[]float64]("waypoints", "x;y pairs")).
//	    Add(port.Output[types.NodeStatus]("result", "")).
//	    Build()
//
// Each Info carries the direction, the bound type, a converter turning
// configuration text into a value.Value of that type, the description and an
// optional default. Untyped ports (AnyTypeAllowed) skip conversion and hand
// the raw text through as a string.
//
// Port names must start with a letter and must not be one of the reserved
// attribute names "name" and "ID".
package port
