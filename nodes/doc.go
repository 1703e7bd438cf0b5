// Package nodes groups the port schemas of the standard tree node types.
//
// The subpackages declare schemas only; they carry no execution logic:
//
//   - action: Sleep, SetBlackboard, AlwaysSuccess, AlwaysFailure
//   - control: Sequence, Fallback, Parallel
//   - decorator: Repeat, RetryUntilSuccessful, Timeout, Delay, Inverter, ForceSuccess
//
// Each subpackage exposes Register(*component.Registry); package
// componentregistry registers all of them at once. Typed nodes implement
// component.RegistryProvider, so their ports resolve converters from the
// registry given with component.WithConversions.
package nodes
