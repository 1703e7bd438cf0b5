// Package value provides Value, a type-erased container that remembers the
// identity of the type it holds and only gives the value back as that type.
package value

import (
	"fmt"
	"reflect"

	"github.com/c360/semports/errors"
)

// Value holds exactly one value of a type known when it was wrapped.
// The zero Value is empty and holds no type.
type Value struct {
	typ reflect.Type
	v   any
}

// Wrap stores a copy of v together with the identity of T.
func Wrap[T any](v T) Value {
	return Value{
		typ: reflect.TypeFor[T](),
		v:   clone(any(v)),
	}
}

// FromReflect stores a copy of rv together with its dynamic type.
// An invalid reflect.Value yields the empty Value.
func FromReflect(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Value{}
	}
	return Value{
		typ: rv.Type(),
		v:   clone(rv.Interface()),
	}
}

// As returns a copy of the held value when T is exactly the held type.
// It never reinterprets: any other T fails with errors.ErrTypeMismatch.
func As[T any](val Value) (T, error) {
	var zero T
	want := reflect.TypeFor[T]()
	if val.typ != want {
		return zero, errors.WrapInvalid(
			fmt.Errorf("%w: holds %s, requested %s", errors.ErrTypeMismatch, val.TypeName(), want),
			"Value", "As", "type check")
	}
	if val.v == nil {
		// interface-typed values wrapped as nil
		return zero, nil
	}
	out, ok := clone(val.v).(T)
	if !ok {
		return zero, errors.WrapInvalid(
			fmt.Errorf("%w: holds %s, requested %s", errors.ErrTypeMismatch, val.TypeName(), want),
			"Value", "As", "type assertion")
	}
	return out, nil
}

// MustAs is like As but panics on mismatch.
func MustAs[T any](val Value) T {
	out, err := As[T](val)
	if err != nil {
		panic(err)
	}
	return out
}

// Is reports whether the value holds exactly type T.
func Is[T any](val Value) bool {
	return val.typ != nil && val.typ == reflect.TypeFor[T]()
}

// Empty reports whether the value holds nothing.
func (val Value) Empty() bool {
	return val.typ == nil
}

// Type returns the identity of the held type, or nil for an empty value.
func (val Value) Type() reflect.Type {
	return val.typ
}

// TypeName returns the held type's name, or "<empty>".
func (val Value) TypeName() string {
	if val.typ == nil {
		return "<empty>"
	}
	return val.typ.String()
}

// Interface returns a copy of the held value as an any.
func (val Value) Interface() any {
	return clone(val.v)
}

// Equal reports whether both values hold the same type and deeply equal contents.
// Values of different types are never equal.
func (val Value) Equal(other Value) bool {
	if val.typ != other.typ {
		return false
	}
	return reflect.DeepEqual(val.v, other.v)
}

// String implements fmt.Stringer for diagnostics.
func (val Value) String() string {
	if val.typ == nil {
		return "<empty>"
	}
	return fmt.Sprintf("%s(%v)", val.typ, val.v)
}

// clone copies slices and maps so the container never aliases caller memory.
// Elements are copied shallowly.
func clone(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	default:
		return v
	}
}
