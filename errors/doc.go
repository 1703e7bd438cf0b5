// Package errors provides standardized error handling patterns for semports.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and Fatal
// (programmer fault, stop construction).
//
// The port schema layer maps its own taxonomy onto these classes:
//
//   - ErrInvalidPortName: a port name failed the allowed-name predicate (Invalid)
//   - ErrTypeMismatch: an erased value was extracted as the wrong type (Invalid)
//   - ErrConversion: text did not match the grammar of its target type (Invalid)
//   - ErrMissingSpecialization: no parser or renderer exists for a type (Fatal)
//
// A missing specialization is a defect in the embedding program, not bad input data,
// which is why it is the only Fatal member of the taxonomy.
//
// # Quick Start
//
// Wrap errors with context for debugging:
//
//	if !port.IsAllowedPortName(name) {
//	    return errors.WrapInvalid(
//	        fmt.Errorf("%w: %q", errors.ErrInvalidPortName, name),
//	        "Port", "Create", "name validation")
//	}
//
// Check classification or sentinels:
//
//	v, err := info.ParseString("55")
//	switch {
//	case errors.IsFatal(err):
//	    log.Fatalf("port schema is broken: %v", err)
//	case errors.Is(err, errors.ErrConversion):
//	    // substitute the default value or reject the document
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() function preserves the original error's classification:
//
//	errors.Wrap(err, "Component", "Method", "action")
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection. Is, As and Join are
// re-exported so callers importing this package do not need a second errors import:
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
