package component

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
	"github.com/c360/semports/value"
)

// Validation error codes
const (
	CodeUnknown   = "unknown"   // attribute names no declared port
	CodeName      = "name"      // attribute key is not an allowed port name
	CodeType      = "type"      // text does not parse as the port's type
	CodeConverter = "converter" // the port's type has no converter
)

// ValidationError represents a validation error for a specific attribute.
// It provides structured error information that can be displayed to users.
type ValidationError struct {
	Field   string `json:"field"`   // Attribute that failed validation
	Message string `json:"message"` // Human-readable error message
	Code    string `json:"code"`    // Machine-readable error code (see above)
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	return ve.Message
}

// Unwrap maps the code to its sentinel so callers can use errors.Is.
func (ve ValidationError) Unwrap() error {
	switch ve.Code {
	case CodeUnknown:
		return errors.ErrUnknownAttribute
	case CodeName:
		return errors.ErrInvalidPortName
	case CodeType:
		return errors.ErrConversion
	case CodeConverter:
		return errors.ErrMissingSpecialization
	}
	return nil
}

// IsReference reports whether text is a reference of the form {key} rather
// than a literal, and returns the key. References are resolved by whoever
// owns the shared storage, so they are never converted here.
func IsReference(text string) (string, bool) {
	if len(text) < 3 || text[0] != '{' || text[len(text)-1] != '}' {
		return "", false
	}
	key := text[1 : len(text)-1]
	if strings.ContainsAny(key, "{}") {
		return "", false
	}
	return key, true
}

// ValidateAttributes checks configuration attributes against a port list.
// The reserved attributes name and ID are skipped. Literal values of typed
// ports must parse as the port's type.
//
// Returns every failure found, ordered by attribute name. An empty slice
// means the attributes are valid.
func ValidateAttributes(ports port.List, attrs map[string]string) []ValidationError {
	_, errs := CheckAttributes(ports, attrs)
	return errs
}

// ResolveAttributes converts attributes into typed values. Ports without an
// attribute fall back to their default; ports with neither, and ports bound
// to a reference, are left out.
//
// Any validation failure is returned as one invalid-class error listing all
// of them.
func ResolveAttributes(ports port.List, attrs map[string]string) (map[string]value.Value, error) {
	resolved, verrs := CheckAttributes(ports, attrs)
	if len(verrs) > 0 {
		joined := make([]error, len(verrs))
		for i, ve := range verrs {
			joined[i] = ve
		}
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %w", errors.ErrInvalidData, errors.Join(joined...)),
			"Component", "ResolveAttributes", "attribute validation")
	}
	return resolved, nil
}

// CheckAttributes validates and resolves attributes in one pass, converting
// each literal exactly once. The resolved map is nil when any attribute
// fails.
func CheckAttributes(ports port.List, attrs map[string]string) (map[string]value.Value, []ValidationError) {
	var errs []ValidationError
	resolved := make(map[string]value.Value, len(ports))

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if port.IsReservedName(key) {
			continue
		}
		text := attrs[key]

		info, exists := ports[key]
		if !exists {
			if !port.IsAllowedPortName(key) {
				errs = append(errs, ValidationError{
					Field:   key,
					Message: fmt.Sprintf("Attribute %q is not a valid port name", key),
					Code:    CodeName,
				})
				continue
			}
			errs = append(errs, ValidationError{
				Field:   key,
				Message: fmt.Sprintf("Attribute %q does not match any declared port (have %v)", key, ports.Names()),
				Code:    CodeUnknown,
			})
			continue
		}

		if _, ref := IsReference(text); ref {
			continue
		}
		v, err := info.ParseString(text)
		if err != nil {
			code := CodeType
			if errors.IsFatal(err) {
				code = CodeConverter
			}
			errs = append(errs, ValidationError{
				Field:   key,
				Message: fmt.Sprintf("Attribute %q: %v", key, err),
				Code:    code,
			})
			continue
		}
		resolved[key] = v
	}

	if len(errs) > 0 {
		return nil, errs
	}
	for name, info := range ports {
		if _, present := attrs[name]; !present && info.HasDefault() {
			resolved[name] = info.DefaultValue()
		}
	}
	return resolved, nil
}
