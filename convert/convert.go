package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/c360/semports/errors"
	"github.com/c360/semports/value"
)

// Lookup returns the converter that parses text into t.
//
// A converter registered for exactly t always takes precedence, including for
// string-kind types: registering one for a named string type overrides the
// verbatim conversion, which is how such types add normalization or
// validation. Without a registration, string-kind types store the text
// verbatim. Lookup reports false when neither applies.
func (r *Registry) Lookup(t reflect.Type) (Converter, bool) {
	if conv, ok := r.Converter(t); ok {
		return conv, true
	}
	if t != nil && t.Kind() == reflect.String {
		return verbatim(t), true
	}
	return nil, false
}

// Parse converts text into a Value of type t.
func (r *Registry) Parse(t reflect.Type, text string) (value.Value, error) {
	if t == nil {
		return value.Value{}, errors.WrapInvalid(errors.ErrInvalidRegistrant, "Registry", "Parse", "type validation")
	}
	conv, ok := r.Lookup(t)
	if !ok {
		return value.Value{}, r.missingConverter(t, "Parse")
	}
	return conv(text)
}

func verbatim(t reflect.Type) Converter {
	return func(text string) (value.Value, error) {
		return value.FromReflect(reflect.ValueOf(text).Convert(t)), nil
	}
}

// FromString parses text into T using the default registry.
func FromString[T any](text string) (T, error) {
	return FromStringWith[T](Default(), text)
}

// FromStringWith parses text into T using r.
func FromStringWith[T any](r *Registry, text string) (T, error) {
	var zero T
	v, err := r.Parse(reflect.TypeFor[T](), text)
	if err != nil {
		return zero, err
	}
	out, err := value.As[T](v)
	if err != nil {
		return zero, errors.Wrap(err, "Registry", "FromString", "converter result check")
	}
	return out, nil
}

// MustFromString is like FromString but panics on error.
func MustFromString[T any](text string) T {
	out, err := FromString[T](text)
	if err != nil {
		panic(err)
	}
	return out
}

// ToStr renders v as text using the default registry.
func ToStr[T any](v T) (string, error) {
	return ToStrWith(Default(), v)
}

// ToStrWith renders v as text using r.
func ToStrWith[T any](r *Registry, v T) (string, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		if _, ok := r.Renderer(t); !ok && any(v) != nil {
			return r.Render(any(v))
		}
	}
	return r.render(t, any(v))
}

// Render renders v as text by its dynamic type.
func (r *Registry) Render(v any) (string, error) {
	if v == nil {
		return "", errors.WrapInvalid(
			fmt.Errorf("%w: cannot render nil", errors.ErrConversion),
			"Registry", "Render", "value validation")
	}
	return r.render(reflect.TypeOf(v), v)
}

func (r *Registry) render(t reflect.Type, v any) (string, error) {
	if render, ok := r.Renderer(t); ok {
		return render(v)
	}
	if s, ok := renderKind(v); ok {
		return s, nil
	}
	return "", errors.WrapFatal(
		fmt.Errorf("%w: no string renderer registered for %s", errors.ErrMissingSpecialization, t),
		"Registry", "Render", "renderer lookup")
}

// renderKind formats values whose underlying kind is arithmetic or string.
func renderKind(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.String:
		return rv.String(), true
	default:
		return "", false
	}
}

// SplitString splits text at every delim. Empty text yields no segments and a
// single trailing delimiter does not produce an empty last segment.
func SplitString(text string, delim rune) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, string(delim))
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
