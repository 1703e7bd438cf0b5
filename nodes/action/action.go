// Package action declares the port schemas of the built-in action nodes.
package action

import (
	"reflect"

	"github.com/c360/semports/component"
	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
	"github.com/c360/semports/types"
)

// SleepConfig holds the attributes of a Sleep node.
type SleepConfig struct {
	Msec uint `json:"msec" port:"input,description:Milliseconds to sleep"`
}

// Sleep waits a fixed time before succeeding.
type Sleep struct{}

// ProvidedPorts implements component.Provider
func (s Sleep) ProvidedPorts() (port.List, error) { return s.ProvidedPortsWith(nil) }

// ProvidedPortsWith implements component.RegistryProvider
func (Sleep) ProvidedPortsWith(r *convert.Registry) (port.List, error) {
	return component.GeneratePorts(reflect.TypeFor[SleepConfig](), r)
}

// Description implements component.Describer
func (Sleep) Description() string { return "Wait msec milliseconds, then return SUCCESS" }

// SetBlackboard copies a literal or another entry into a blackboard entry.
type SetBlackboard struct{}

// ProvidedPorts implements component.Provider
func (SetBlackboard) ProvidedPorts() (port.List, error) {
	return port.NewBuilder().
		Add(port.UntypedInput("value", "Value represented as a string")).
		Add(port.UntypedBidirectional("output_key", "Name of the blackboard entry where the value should be written")).
		Build()
}

// Description implements component.Describer
func (SetBlackboard) Description() string { return "Write value into the entry named by output_key" }

// AlwaysSuccess returns SUCCESS. It has no ports.
type AlwaysSuccess struct{}

// AlwaysFailure returns FAILURE. It has no ports.
type AlwaysFailure struct{}

// Register registers the action node manifests with the registry
func Register(registry *component.Registry) error {
	if err := component.RegisterType[Sleep](registry, "Sleep", types.NodeTypeAction); err != nil {
		return errors.Wrap(err, "action", "Register", "Sleep registration")
	}
	if err := component.RegisterType[SetBlackboard](registry, "SetBlackboard", types.NodeTypeAction); err != nil {
		return errors.Wrap(err, "action", "Register", "SetBlackboard registration")
	}
	if err := component.RegisterType[AlwaysSuccess](registry, "AlwaysSuccess", types.NodeTypeAction); err != nil {
		return errors.Wrap(err, "action", "Register", "AlwaysSuccess registration")
	}
	if err := component.RegisterType[AlwaysFailure](registry, "AlwaysFailure", types.NodeTypeAction); err != nil {
		return errors.Wrap(err, "action", "Register", "AlwaysFailure registration")
	}
	return nil
}
