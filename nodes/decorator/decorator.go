// Package decorator declares the port schemas of the built-in decorator nodes.
package decorator

import (
	"reflect"

	"github.com/c360/semports/component"
	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
	"github.com/c360/semports/types"
)

// TimeoutConfig holds the attributes of a Timeout node.
type TimeoutConfig struct {
	Msec uint `json:"msec" port:"input,description:Halt the child if it is still running after msec milliseconds"`
}

// DelayConfig holds the attributes of a Delay node.
type DelayConfig struct {
	DelayMsec uint `json:"delay_msec" port:"input,description:Tick the child after a few milliseconds"`
}

// Timeout halts a child that runs too long.
type Timeout struct{}

// ProvidedPorts implements component.Provider
func (t Timeout) ProvidedPorts() (port.List, error) { return t.ProvidedPortsWith(nil) }

// ProvidedPortsWith implements component.RegistryProvider
func (Timeout) ProvidedPortsWith(r *convert.Registry) (port.List, error) {
	return component.GeneratePorts(reflect.TypeFor[TimeoutConfig](), r)
}

// Delay postpones the first tick of its child.
type Delay struct{}

// ProvidedPorts implements component.Provider
func (d Delay) ProvidedPorts() (port.List, error) { return d.ProvidedPortsWith(nil) }

// ProvidedPortsWith implements component.RegistryProvider
func (Delay) ProvidedPortsWith(r *convert.Registry) (port.List, error) {
	return component.GeneratePorts(reflect.TypeFor[DelayConfig](), r)
}

// Repeat ticks a successful child several times.
type Repeat struct{}

// ProvidedPorts implements component.Provider
func (r Repeat) ProvidedPorts() (port.List, error) { return r.ProvidedPortsWith(nil) }

// ProvidedPortsWith implements component.RegistryProvider
func (Repeat) ProvidedPortsWith(r *convert.Registry) (port.List, error) {
	return port.NewBuilder().
		Add(port.Input[int]("num_cycles",
			"Repeat a successful child up to N times. Use -1 to create an infinite loop.", port.WithRegistry(r))).
		Build()
}

// RetryUntilSuccessful retries a failing child.
type RetryUntilSuccessful struct{}

// ProvidedPorts implements component.Provider
func (r RetryUntilSuccessful) ProvidedPorts() (port.List, error) { return r.ProvidedPortsWith(nil) }

// ProvidedPortsWith implements component.RegistryProvider
func (RetryUntilSuccessful) ProvidedPortsWith(r *convert.Registry) (port.List, error) {
	return port.NewBuilder().
		Add(port.Input[int]("num_attempts",
			"Execute again a failing child up to N times. Use -1 to create an infinite loop.", port.WithRegistry(r))).
		Build()
}

// Inverter swaps SUCCESS and FAILURE. It has no ports.
type Inverter struct{}

// ForceSuccess turns FAILURE into SUCCESS. It has no ports.
type ForceSuccess struct{}

// Register registers the decorator node manifests with the registry
func Register(registry *component.Registry) error {
	registrations := []struct {
		id       string
		register func(*component.Registry, string, types.NodeType) error
	}{
		{"Timeout", component.RegisterType[Timeout]},
		{"Delay", component.RegisterType[Delay]},
		{"Repeat", component.RegisterType[Repeat]},
		{"RetryUntilSuccessful", component.RegisterType[RetryUntilSuccessful]},
		{"Inverter", component.RegisterType[Inverter]},
		{"ForceSuccess", component.RegisterType[ForceSuccess]},
	}

	for _, reg := range registrations {
		if err := reg.register(registry, reg.id, types.NodeTypeDecorator); err != nil {
			return errors.Wrap(err, "decorator", "Register", reg.id+" registration")
		}
	}
	return nil
}
