package convert

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/c360/semports/errors"
	"github.com/c360/semports/metric"
	"github.com/c360/semports/value"
)

// Converter parses text into a Value holding the converter's target type.
type Converter func(text string) (value.Value, error)

// Renderer formats a value of the renderer's type as text.
type Renderer func(v any) (string, error)

// Registry maps type identities to converters and renderers.
//
// A Registry has two phases. During registration any goroutine that owns the
// registry may add entries; Freeze ends that phase and afterwards the registry
// is read-only. Lookups are safe for concurrent use in both phases.
type Registry struct {
	converters map[reflect.Type]Converter
	renderers  map[reflect.Type]Renderer
	frozen     bool
	metrics    *metric.Metrics
	logger     *slog.Logger
	mu         sync.RWMutex
}

// Option configures a Registry
type Option func(*Registry)

// WithMetrics counts conversions per target type and result.
func WithMetrics(m *metric.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithLogger sets the logger used for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		converters: make(map[reflect.Type]Converter),
		renderers:  make(map[reflect.Type]Renderer),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultRegistry creates a registry holding the built-in conversions.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	registerBuiltins(r)
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry with the built-in conversions.
// Programs that add their own types should register them before the first
// concurrent lookup and may call Freeze once they are done.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewDefaultRegistry()
	})
	return defaultRegistry
}

// Register installs parse as the converter for T, replacing any previous one.
func Register[T any](r *Registry, parse func(string) (T, error)) error {
	if parse == nil {
		return errors.WrapInvalid(errors.ErrInvalidRegistrant, "Registry", "Register", "parse function validation")
	}
	return r.RegisterConverter(reflect.TypeFor[T](), func(text string) (value.Value, error) {
		v, err := parse(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.Wrap(v), nil
	})
}

// RegisterRenderer installs render as the renderer for T, replacing any previous one.
func RegisterRenderer[T any](r *Registry, render func(T) (string, error)) error {
	if render == nil {
		return errors.WrapInvalid(errors.ErrInvalidRegistrant, "Registry", "RegisterRenderer", "render function validation")
	}
	t := reflect.TypeFor[T]()
	return r.RegisterRendererFunc(t, func(v any) (string, error) {
		typed, ok := v.(T)
		if !ok && v != nil {
			return "", errors.WrapInvalid(
				fmt.Errorf("%w: renderer for %s got %T", errors.ErrTypeMismatch, t, v),
				"Registry", "Render", "type check")
		}
		return render(typed)
	})
}

// RegisterConverter installs conv as the converter for t.
func (r *Registry) RegisterConverter(t reflect.Type, conv Converter) error {
	if t == nil || conv == nil {
		return errors.WrapInvalid(errors.ErrInvalidRegistrant, "Registry", "RegisterConverter", "registrant validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.WrapInvalid(
			fmt.Errorf("%w: cannot register converter for %s", errors.ErrRegistryFrozen, t),
			"Registry", "RegisterConverter", "phase check")
	}

	_, replaced := r.converters[t]
	r.converters[t] = r.instrument(t, conv)
	r.metrics.SetConverters(len(r.converters))
	r.logger.Debug("Registered string converter", "type", t.String(), "replaced", replaced)
	return nil
}

// RegisterRendererFunc installs render as the renderer for t.
func (r *Registry) RegisterRendererFunc(t reflect.Type, render Renderer) error {
	if t == nil || render == nil {
		return errors.WrapInvalid(errors.ErrInvalidRegistrant, "Registry", "RegisterRendererFunc", "registrant validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.WrapInvalid(
			fmt.Errorf("%w: cannot register renderer for %s", errors.ErrRegistryFrozen, t),
			"Registry", "RegisterRendererFunc", "phase check")
	}

	r.renderers[t] = render
	r.logger.Debug("Registered string renderer", "type", t.String())
	return nil
}

// instrument wraps conv so every invocation is counted.
func (r *Registry) instrument(t reflect.Type, conv Converter) Converter {
	if r.metrics == nil {
		return conv
	}
	name := t.String()
	metrics := r.metrics
	return func(text string) (value.Value, error) {
		v, err := conv(text)
		if err != nil {
			metrics.RecordConversion(name, metric.ResultFailure)
			return v, err
		}
		metrics.RecordConversion(name, metric.ResultSuccess)
		return v, nil
	}
}

// Freeze ends the registration phase. It is idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.frozen {
		r.frozen = true
		r.logger.Debug("Conversion registry frozen", "converters", len(r.converters))
	}
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Converter returns the converter registered for exactly t.
func (r *Registry) Converter(t reflect.Type) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conv, ok := r.converters[t]
	return conv, ok
}

// Renderer returns the renderer registered for exactly t.
// It does not consult the arithmetic fallback used by Render.
func (r *Registry) Renderer(t reflect.Type) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	render, ok := r.renderers[t]
	return render, ok
}

// Types returns the sorted names of all types with a converter.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.converters))
	for t := range r.converters {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// Len returns the number of types with a converter.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.converters)
}

// missingConverter reports the absence of a parser for t.
func (r *Registry) missingConverter(t reflect.Type, method string) error {
	r.metrics.RecordConversion(t.String(), metric.ResultMissing)
	return errors.WrapFatal(
		fmt.Errorf("%w: no string converter registered for %s", errors.ErrMissingSpecialization, t),
		"Registry", method, "converter lookup")
}
