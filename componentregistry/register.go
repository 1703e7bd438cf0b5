// Package componentregistry registers the built-in node manifests.
package componentregistry

import (
	"errors"

	"github.com/c360/semports/component"
	pkgerrors "github.com/c360/semports/errors"
	"github.com/c360/semports/nodes/action"
	"github.com/c360/semports/nodes/control"
	"github.com/c360/semports/nodes/decorator"
)

// Register registers every built-in node manifest with the provided registry:
//
// Actions:
//   - Sleep, SetBlackboard, AlwaysSuccess, AlwaysFailure
//
// Controls:
//   - Sequence, Fallback, Parallel
//
// Decorators:
//   - Timeout, Delay, Repeat, RetryUntilSuccessful, Inverter, ForceSuccess
//
// Application-specific nodes register themselves on the same registry.
func Register(registry *component.Registry) error {
	// Nil registry is a programming error (fatal), not invalid input
	if registry == nil {
		return pkgerrors.WrapFatal(
			errors.New("registry cannot be nil"),
			"ComponentRegistry", "Register", "registry validation")
	}

	if err := action.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "action node registration")
	}

	if err := control.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "control node registration")
	}

	if err := decorator.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "decorator node registration")
	}

	return nil
}
