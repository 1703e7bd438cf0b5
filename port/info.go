package port

import (
	"encoding/json"
	"reflect"

	"github.com/c360/semports/convert"
	"github.com/c360/semports/types"
	"github.com/c360/semports/value"
)

// AnyTypeAllowed binds a port to no particular type. Its values are the raw
// configuration text.
type AnyTypeAllowed struct{}

var anyType = reflect.TypeFor[AnyTypeAllowed]()

// Info describes one port. It is immutable once declared.
type Info struct {
	direction          types.PortDirection
	typ                reflect.Type
	converter          convert.Converter
	description        string
	defaultValue       value.Value
	defaultValueString string
}

// Direction returns the data flow direction.
func (i Info) Direction() types.PortDirection { return i.direction }

// Type returns the bound type. Untyped ports return the AnyTypeAllowed type.
func (i Info) Type() reflect.Type { return i.typ }

// TypeName returns the bound type's name.
func (i Info) TypeName() string {
	if i.typ == nil {
		return ""
	}
	return i.typ.String()
}

// Description returns the human-readable description, possibly empty.
func (i Info) Description() string { return i.description }

// DefaultValue returns the default, or an empty Value when none was declared.
func (i Info) DefaultValue() value.Value { return i.defaultValue }

// DefaultValueString returns the rendered default. It is empty when no
// default was declared or the default's type has no renderer.
func (i Info) DefaultValueString() string { return i.defaultValueString }

// HasDefault reports whether a default value was declared.
func (i Info) HasDefault() bool { return !i.defaultValue.Empty() }

// IsStronglyTyped reports whether the port is bound to a concrete type.
func (i Info) IsStronglyTyped() bool {
	return i.typ != nil && i.typ != anyType
}

// Converter returns the text converter, or nil for untyped ports.
func (i Info) Converter() convert.Converter { return i.converter }

// ParseString converts configuration text into a value of the bound type.
// Untyped ports return the text itself.
func (i Info) ParseString(text string) (value.Value, error) {
	if i.converter == nil {
		return value.Wrap(text), nil
	}
	return i.converter(text)
}

// MarshalJSON renders the descriptor for schema documents.
func (i Info) MarshalJSON() ([]byte, error) {
	doc := struct {
		Direction   types.PortDirection `json:"direction"`
		Type        string              `json:"type"`
		Typed       bool                `json:"strongly_typed"`
		Description string              `json:"description,omitempty"`
		Default     *string             `json:"default,omitempty"`
	}{
		Direction:   i.direction,
		Type:        i.TypeName(),
		Typed:       i.IsStronglyTyped(),
		Description: i.description,
	}
	if i.HasDefault() {
		def := i.defaultValueString
		doc.Default = &def
	}
	return json.Marshal(doc)
}
