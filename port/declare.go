package port

import (
	"fmt"
	"reflect"

	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/types"
	"github.com/c360/semports/value"
)

// Entry pairs a port name with its descriptor.
type Entry struct {
	Name string
	Info Info
}

// Option customizes a single declaration.
type Option func(*options)

type options struct {
	registry  *convert.Registry
	converter convert.Converter
}

// WithRegistry resolves converters and renderers from r instead of convert.Default().
func WithRegistry(r *convert.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithConverter uses conv for this port only. The registry is not modified.
func WithConverter(conv convert.Converter) Option {
	return func(o *options) {
		o.converter = conv
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = convert.Default()
	}
	return o
}

// Create declares a port of type T.
//
// The converter comes from WithConverter, else from the registry. When the
// registry has no converter for T the declaration still succeeds and the
// converter fails with errors.ErrMissingSpecialization when called.
func Create[T any](dir types.PortDirection, name, description string, opts ...Option) (Entry, error) {
	o := newOptions(opts)
	info, err := newInfo(reflect.TypeFor[T](), dir, name, description, o)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Info: info}, nil
}

// CreateWithDefault declares a port of type T carrying def as its default.
// The rendered default is best-effort: if T has no renderer it stays empty.
func CreateWithDefault[T any](dir types.PortDirection, name string, def T, description string, opts ...Option) (Entry, error) {
	o := newOptions(opts)
	info, err := newInfo(reflect.TypeFor[T](), dir, name, description, o)
	if err != nil {
		return Entry{}, err
	}
	info.defaultValue = value.Wrap(def)
	if text, err := convert.ToStrWith(o.registry, def); err == nil {
		info.defaultValueString = text
	}
	return Entry{Name: name, Info: info}, nil
}

// CreateFromType declares a port bound to t, optionally with a default
// already held in a Value of type t. It serves declarations driven by
// reflection, such as struct tags.
func CreateFromType(t reflect.Type, dir types.PortDirection, name, description string, def value.Value, opts ...Option) (Entry, error) {
	if t == nil {
		return Entry{}, errors.WrapInvalid(errors.ErrInvalidData, "Port", "CreateFromType", "type validation")
	}
	o := newOptions(opts)
	info, err := newInfo(t, dir, name, description, o)
	if err != nil {
		return Entry{}, err
	}
	if !def.Empty() {
		if def.Type() != t {
			return Entry{}, errors.WrapInvalid(
				fmt.Errorf("%w: default holds %s, port %q is %s", errors.ErrTypeMismatch, def.TypeName(), name, t),
				"Port", "CreateFromType", "default type check")
		}
		info.defaultValue = def
		if text, err := o.registry.Render(def.Interface()); err == nil {
			info.defaultValueString = text
		}
	}
	return Entry{Name: name, Info: info}, nil
}

func newInfo(t reflect.Type, dir types.PortDirection, name, description string, o options) (Info, error) {
	if IsReservedName(name) {
		return Info{}, errors.WrapInvalid(
			fmt.Errorf("%w: %w: %q is set on every node", errors.ErrInvalidPortName, errors.ErrReservedAttribute, name),
			"Port", "Create", "name validation")
	}
	if !IsAllowedPortName(name) {
		return Info{}, errors.WrapInvalid(
			fmt.Errorf("%w: %q (must start with an ASCII letter)", errors.ErrInvalidPortName, name),
			"Port", "Create", "name validation")
	}
	if !dir.IsValid() {
		return Info{}, errors.WrapInvalid(
			fmt.Errorf("%w: port %q has direction %s", errors.ErrInvalidData, name, dir),
			"Port", "Create", "direction validation")
	}

	info := Info{
		direction:   dir,
		typ:         t,
		description: description,
	}
	if t == anyType {
		return info, nil
	}
	if o.converter != nil {
		info.converter = o.converter
		return info, nil
	}
	info.converter = resolveConverter(o.registry, t)
	return info, nil
}

// resolveConverter binds the registry's converter for t now if it exists,
// otherwise defers the lookup to the first call.
func resolveConverter(r *convert.Registry, t reflect.Type) convert.Converter {
	if conv, ok := r.Lookup(t); ok {
		return conv
	}
	return func(text string) (value.Value, error) {
		return r.Parse(t, text)
	}
}

// Input declares an input port of type T.
func Input[T any](name, description string, opts ...Option) (Entry, error) {
	return Create[T](types.PortDirectionInput, name, description, opts...)
}

// Output declares an output port of type T.
func Output[T any](name, description string, opts ...Option) (Entry, error) {
	return Create[T](types.PortDirectionOutput, name, description, opts...)
}

// Bidirectional declares an input/output port of type T.
func Bidirectional[T any](name, description string, opts ...Option) (Entry, error) {
	return Create[T](types.PortDirectionInOut, name, description, opts...)
}

// InputWithDefault declares an input port of type T with a default value.
func InputWithDefault[T any](name string, def T, description string, opts ...Option) (Entry, error) {
	return CreateWithDefault(types.PortDirectionInput, name, def, description, opts...)
}

// OutputWithDefault declares an output port of type T with a default value.
func OutputWithDefault[T any](name string, def T, description string, opts ...Option) (Entry, error) {
	return CreateWithDefault(types.PortDirectionOutput, name, def, description, opts...)
}

// BidirectionalWithDefault declares an input/output port of type T with a default value.
func BidirectionalWithDefault[T any](name string, def T, description string, opts ...Option) (Entry, error) {
	return CreateWithDefault(types.PortDirectionInOut, name, def, description, opts...)
}

// UntypedInput declares an input port that accepts any text.
func UntypedInput(name, description string) (Entry, error) {
	return Input[AnyTypeAllowed](name, description)
}

// UntypedOutput declares an output port of no particular type.
func UntypedOutput(name, description string) (Entry, error) {
	return Output[AnyTypeAllowed](name, description)
}

// UntypedBidirectional declares an input/output port of no particular type.
func UntypedBidirectional(name, description string) (Entry, error) {
	return Bidirectional[AnyTypeAllowed](name, description)
}
