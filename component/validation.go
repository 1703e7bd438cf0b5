package component

import (
	"fmt"

	"github.com/c360/semports/errors"
)

// MaxIDLength bounds manifest identifiers.
const MaxIDLength = 256

// ValidateManifestID checks that id is usable as a manifest identifier and
// as a file name stem: non-empty, bounded, and made of letters, digits,
// dash, underscore and dot.
func ValidateManifestID(id string) error {
	if id == "" {
		return errors.WrapInvalid(errors.ErrInvalidRegistrant, "Validator", "ValidateManifestID", "empty ID")
	}
	if len(id) > MaxIDLength {
		return errors.WrapInvalid(
			fmt.Errorf("%w: ID longer than %d bytes", errors.ErrInvalidRegistrant, MaxIDLength),
			"Validator", "ValidateManifestID", "length check")
	}
	for _, r := range id {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.') {
			return errors.WrapInvalid(
				fmt.Errorf("%w: ID %q contains %q", errors.ErrInvalidRegistrant, id, r),
				"Validator", "ValidateManifestID", "character check")
		}
	}
	if id[0] == '.' {
		return errors.WrapInvalid(
			fmt.Errorf("%w: ID %q starts with a dot", errors.ErrInvalidRegistrant, id),
			"Validator", "ValidateManifestID", "leading dot check")
	}
	return nil
}
