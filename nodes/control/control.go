// Package control declares the port schemas of the built-in control nodes.
package control

import (
	"github.com/c360/semports/component"
	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
	"github.com/c360/semports/types"
)

// Parallel ticks all children concurrently.
type Parallel struct{}

// ProvidedPorts implements component.Provider
func (p Parallel) ProvidedPorts() (port.List, error) { return p.ProvidedPortsWith(nil) }

// ProvidedPortsWith implements component.RegistryProvider
func (Parallel) ProvidedPortsWith(r *convert.Registry) (port.List, error) {
	return port.NewBuilder().
		Add(port.InputWithDefault("success_count", -1,
			"number of children that need to succeed to trigger a SUCCESS", port.WithRegistry(r))).
		Add(port.InputWithDefault("failure_count", 1,
			"number of children that need to fail to trigger a FAILURE", port.WithRegistry(r))).
		Build()
}

// Description implements component.Describer
func (Parallel) Description() string {
	return "Tick every child; -1 in a threshold means all children"
}

// Sequence ticks children in order until one fails.
type Sequence struct{}

// Description implements component.Describer
func (Sequence) Description() string { return "Tick children in order until one does not succeed" }

// Fallback ticks children in order until one succeeds.
type Fallback struct{}

// Description implements component.Describer
func (Fallback) Description() string { return "Tick children in order until one does not fail" }

// Register registers the control node manifests with the registry
func Register(registry *component.Registry) error {
	if err := component.RegisterType[Sequence](registry, "Sequence", types.NodeTypeControl); err != nil {
		return errors.Wrap(err, "control", "Register", "Sequence registration")
	}
	if err := component.RegisterType[Fallback](registry, "Fallback", types.NodeTypeControl); err != nil {
		return errors.Wrap(err, "control", "Register", "Fallback registration")
	}
	if err := component.RegisterType[Parallel](registry, "Parallel", types.NodeTypeControl); err != nil {
		return errors.Wrap(err, "control", "Register", "Parallel registration")
	}
	return nil
}
