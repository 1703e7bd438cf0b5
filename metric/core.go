package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Conversion result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultMissing = "missing"
)

// Metrics contains the semports metrics. All fields are safe to use on a nil
// *Metrics through the helper methods, so instrumentation stays optional.
type Metrics struct {
	ConversionsTotal     *prometheus.CounterVec
	RegisteredConverters prometheus.Gauge
	RegisteredManifests  prometheus.Gauge
	PortsDeclared        *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all semports metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ConversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semports",
				Subsystem: "conversion",
				Name:      "total",
				Help:      "Text to value conversions by target type and result",
			},
			[]string{"type", "result"},
		),

		RegisteredConverters: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "semports",
				Subsystem: "registry",
				Name:      "converters",
				Help:      "Number of types with a registered string converter",
			},
		),

		RegisteredManifests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "semports",
				Subsystem: "registry",
				Name:      "manifests",
				Help:      "Number of registered component manifests",
			},
		),

		PortsDeclared: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semports",
				Subsystem: "ports",
				Name:      "declared_total",
				Help:      "Ports carried by registered manifests, by direction",
			},
			[]string{"direction"},
		),
	}
}

// RecordConversion counts one conversion attempt for typeName.
func (m *Metrics) RecordConversion(typeName, result string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(typeName, result).Inc()
}

// SetConverters records the size of a conversion registry.
func (m *Metrics) SetConverters(n int) {
	if m == nil {
		return
	}
	m.RegisteredConverters.Set(float64(n))
}

// SetManifests records the size of a manifest registry.
func (m *Metrics) SetManifests(n int) {
	if m == nil {
		return
	}
	m.RegisteredManifests.Set(float64(n))
}

// RecordPort counts one declared port by direction.
func (m *Metrics) RecordPort(direction string) {
	if m == nil {
		return
	}
	m.PortsDeclared.WithLabelValues(direction).Inc()
}
