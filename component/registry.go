package component

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/metric"
	"github.com/c360/semports/port"
	"github.com/c360/semports/types"
)

// Manifest describes one registered component type: its identifier, node
// category, declared ports and optional description.
type Manifest struct {
	ID          string         `json:"id"`
	Type        types.NodeType `json:"type"`
	Ports       port.List      `json:"ports"`
	Description string         `json:"description,omitempty"`
}

// clone copies the manifest so callers cannot reach the stored port list.
func (m *Manifest) clone() Manifest {
	out := *m
	out.Ports = m.Ports.Clone()
	return out
}

// PortNames returns the manifest's port names in lexical order.
func (m Manifest) PortNames() []string {
	return m.Ports.Names()
}

// MarshalJSON always emits ports as an object, never null.
func (m Manifest) MarshalJSON() ([]byte, error) {
	type manifestAlias Manifest
	alias := manifestAlias(m)
	if alias.Ports == nil {
		alias.Ports = port.List{}
	}
	return json.Marshal(alias)
}

// Registry holds component manifests by ID.
// It is safe for concurrent use.
type Registry struct {
	manifests   map[string]*Manifest
	conversions *convert.Registry
	metrics     *metric.Metrics
	logger      *slog.Logger
	mu          sync.RWMutex
}

// Option configures a Registry
type Option func(*Registry)

// WithMetrics reports manifest and port counts to m.
func WithMetrics(m *metric.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithConversions makes RegisterType declare ports against conv instead of
// convert.Default().
func WithConversions(conv *convert.Registry) Option {
	return func(r *Registry) {
		r.conversions = conv
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

// NewRegistry creates a new empty manifest registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		manifests: make(map[string]*Manifest),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a manifest.
// Returns an error if the ID is invalid, the node type is undefined or the
// ID is already registered.
func (r *Registry) Register(m Manifest) error {
	if err := ValidateManifestID(m.ID); err != nil {
		return errors.Wrap(err, "Registry", "Register", "manifest ID validation")
	}
	if m.Type == types.NodeTypeUndefined || !m.Type.IsValid() {
		return errors.WrapInvalid(
			fmt.Errorf("%w: manifest %q has node type %s", errors.ErrInvalidRegistrant, m.ID, m.Type),
			"Registry", "Register", "node type validation")
	}
	m.Ports = m.Ports.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manifests[m.ID]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("%w: manifest '%s'", errors.ErrAlreadyRegistered, m.ID),
			"Registry", "Register", "duplicate manifest check")
	}

	stored := m
	r.manifests[m.ID] = &stored

	r.metrics.SetManifests(len(r.manifests))
	for _, info := range m.Ports {
		r.metrics.RecordPort(info.Direction().String())
	}
	r.logger.Debug("Registered manifest",
		"id", m.ID,
		"type", m.Type.String(),
		"ports", len(m.Ports))
	return nil
}

// RegisterType registers C under id, taking its ports from ProvidedPortsWith[C]
// with the registry's conversions and its description from DescriptionOf[C].
func RegisterType[C any](r *Registry, id string, nodeType types.NodeType) error {
	ports, err := ProvidedPortsWith[C](r.Conversions())
	if err != nil {
		return errors.Wrap(err, "Registry", "RegisterType", "port declaration of "+id)
	}
	description, _ := DescriptionOf[C]()
	return r.Register(Manifest{
		ID:          id,
		Type:        nodeType,
		Ports:       ports,
		Description: description,
	})
}

// Conversions returns the conversion registry ports are declared against,
// or nil when declarations use convert.Default().
func (r *Registry) Conversions() *convert.Registry {
	return r.conversions
}

// Unregister removes the manifest registered under id.
// It reports whether a manifest was removed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manifests[id]; !exists {
		return false
	}
	delete(r.manifests, id)
	r.metrics.SetManifests(len(r.manifests))
	return true
}

// Manifest returns the manifest registered under id.
func (r *Registry) Manifest(id string) (Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.manifests[id]
	if !exists {
		return Manifest{}, false
	}
	return m.clone(), true
}

// Require returns the manifest registered under id, or an invalid-class
// error wrapping errors.ErrNotRegistered.
func (r *Registry) Require(id string) (Manifest, error) {
	m, ok := r.Manifest(id)
	if !ok {
		return Manifest{}, errors.WrapInvalid(
			fmt.Errorf("%w: node type %q", errors.ErrNotRegistered, id),
			"Registry", "Require", "manifest lookup")
	}
	return m, nil
}

// ListManifests returns all manifests ordered by ID.
func (r *Registry) ListManifests() []Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Manifest, 0, len(r.manifests))
	for _, m := range r.manifests {
		out = append(out, m.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the registered IDs in lexical order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.manifests))
	for id := range r.manifests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered manifests.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.manifests)
}
