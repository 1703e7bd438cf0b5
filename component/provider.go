package component

import (
	"reflect"

	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
)

// Provider is implemented by components that declare their own ports.
// ProvidedPorts is called on a zero value and must not depend on state.
type Provider interface {
	ProvidedPorts() (port.List, error)
}

// RegistryProvider is implemented by components whose declarations resolve
// converters from a caller-supplied conversion registry. A nil registry means
// convert.Default().
type RegistryProvider interface {
	ProvidedPortsWith(r *convert.Registry) (port.List, error)
}

// Describer is implemented by components that carry a static description.
type Describer interface {
	Description() string
}

// zeroOf returns a zero value of C as an any, plus a pointer to one.
// A nil pointer type is replaced by a pointer to a fresh zero element so
// methods with pointer receivers can run.
func zeroOf[C any]() (any, any) {
	var zero C
	t := reflect.TypeFor[C]()
	if t.Kind() == reflect.Pointer {
		fresh := reflect.New(t.Elem())
		return fresh.Interface(), fresh.Interface()
	}
	return any(zero), any(&zero)
}

func capability[C any, I any]() (I, bool) {
	v, ptr := zeroOf[C]()
	if c, ok := v.(I); ok {
		return c, true
	}
	if c, ok := ptr.(I); ok {
		return c, true
	}
	var none I
	return none, false
}

// HasProvidedPorts reports whether C or *C implements Provider or
// RegistryProvider.
func HasProvidedPorts[C any]() bool {
	if _, ok := capability[C, RegistryProvider](); ok {
		return true
	}
	_, ok := capability[C, Provider]()
	return ok
}

// ProvidedPorts returns the ports C declares, resolved against
// convert.Default(). Types without a provider capability have no ports and
// yield an empty, non-nil list.
func ProvidedPorts[C any]() (port.List, error) {
	return ProvidedPortsWith[C](nil)
}

// ProvidedPortsWith returns the ports C declares. RegistryProvider
// implementations resolve their converters from r; plain Providers ignore it.
func ProvidedPortsWith[C any](r *convert.Registry) (port.List, error) {
	typeName := reflect.TypeFor[C]().String()
	if p, ok := capability[C, RegistryProvider](); ok {
		return callProvider(func() (port.List, error) { return p.ProvidedPortsWith(r) }, typeName)
	}
	if p, ok := capability[C, Provider](); ok {
		return callProvider(p.ProvidedPorts, typeName)
	}
	return port.List{}, nil
}

// PortsOf returns the ports declared by the dynamic type of v.
func PortsOf(v any) (port.List, error) {
	switch p := v.(type) {
	case RegistryProvider:
		return callProvider(func() (port.List, error) { return p.ProvidedPortsWith(nil) }, reflect.TypeOf(v).String())
	case Provider:
		return callProvider(p.ProvidedPorts, reflect.TypeOf(v).String())
	}
	return port.List{}, nil
}

func callProvider(declare func() (port.List, error), typeName string) (port.List, error) {
	list, err := declare()
	if err != nil {
		return nil, errors.Wrap(err, "Component", "ProvidedPorts", "port declaration of "+typeName)
	}
	if list == nil {
		list = port.List{}
	}
	return list, nil
}

// DescriptionOf returns the static description of C, if it has one.
func DescriptionOf[C any]() (string, bool) {
	d, ok := capability[C, Describer]()
	if !ok {
		return "", false
	}
	return d.Description(), true
}
