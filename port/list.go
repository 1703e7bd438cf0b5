package port

import (
	"fmt"
	"sort"

	"github.com/c360/semports/errors"
	"github.com/c360/semports/types"
)

// List maps port names to descriptors. Names are case-sensitive and unique.
type List map[string]Info

// NewList builds a list from entries, rejecting duplicate names.
func NewList(entries ...Entry) (List, error) {
	list := make(List, len(entries))
	for _, e := range entries {
		if err := list.add(e); err != nil {
			return nil, errors.Wrap(err, "List", "NewList", "entry insertion")
		}
	}
	return list, nil
}

func (l List) add(e Entry) error {
	if _, exists := l[e.Name]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %q", errors.ErrDuplicatePort, e.Name),
			"List", "Add", "duplicate port check")
	}
	l[e.Name] = e.Info
	return nil
}

// Names returns the port names in lexical order.
func (l List) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the descriptor for name.
func (l List) Get(name string) (Info, bool) {
	info, ok := l[name]
	return info, ok
}

// Filter returns the ports declared with direction dir.
func (l List) Filter(dir types.PortDirection) List {
	out := make(List)
	for name, info := range l {
		if info.direction == dir {
			out[name] = info
		}
	}
	return out
}

// Clone returns a copy of the list. Descriptors are values and are shared
// safely; only the map is copied.
func (l List) Clone() List {
	out := make(List, len(l))
	for name, info := range l {
		out[name] = info
	}
	return out
}

// Merge returns a new list holding the ports of both lists.
// A name present in both is an error.
func (l List) Merge(other List) (List, error) {
	out := make(List, len(l)+len(other))
	for name, info := range l {
		out[name] = info
	}
	for _, name := range other.Names() {
		if err := out.add(Entry{Name: name, Info: other[name]}); err != nil {
			return nil, errors.Wrap(err, "List", "Merge", "entry insertion")
		}
	}
	return out, nil
}

// Builder collects declarations and reports every failure at once.
//
//	list, err := port.NewBuilder().
//	    Add(port.Input[int]("speed", "")).
//	    Add(port.UntypedInput("value", "")).
//	    Build()
type Builder struct {
	entries []Entry
	errs    []error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add records the result of a declaration call.
func (b *Builder) Add(e Entry, err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.entries = append(b.entries, e)
	return b
}

// Build returns the list, or all declaration and duplicate errors joined.
func (b *Builder) Build() (List, error) {
	list := make(List, len(b.entries))
	errs := append([]error(nil), b.errs...)
	for _, e := range b.entries {
		if err := list.add(e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return list, nil
}
