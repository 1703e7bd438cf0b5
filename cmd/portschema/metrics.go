package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/semports/errors"
	"github.com/c360/semports/metric"
)

// Metric names owned by the command, registered under appName.
const (
	metricDocumentsChecked = "documents_checked_total"
	metricSchemasExported  = "schemas_exported"
)

// cliMetrics holds the metrics the command records on top of the core
// registry metrics. A nil *cliMetrics records nothing.
type cliMetrics struct {
	registrar        metric.MetricsRegistrar
	documentsChecked *prometheus.CounterVec
	schemasExported  prometheus.Gauge
}

func newCLIMetrics(registrar metric.MetricsRegistrar) (*cliMetrics, error) {
	m := &cliMetrics{
		registrar: registrar,
		documentsChecked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: appName,
			Name:      metricDocumentsChecked,
			Help:      "Node documents checked, by result",
		}, []string{"result"}),
		schemasExported: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: appName,
			Name:      metricSchemasExported,
			Help:      "JSON schemas written by the last export",
		}),
	}

	if err := registrar.RegisterCounterVec(appName, metricDocumentsChecked, m.documentsChecked); err != nil {
		return nil, errors.Wrap(err, "main", "newCLIMetrics", metricDocumentsChecked+" registration")
	}
	if err := registrar.RegisterGauge(appName, metricSchemasExported, m.schemasExported); err != nil {
		registrar.Unregister(appName, metricDocumentsChecked)
		return nil, errors.Wrap(err, "main", "newCLIMetrics", metricSchemasExported+" registration")
	}
	return m, nil
}

func (m *cliMetrics) recordDocument(ok bool) {
	if m == nil {
		return
	}
	result := metric.ResultSuccess
	if !ok {
		result = metric.ResultFailure
	}
	m.documentsChecked.WithLabelValues(result).Inc()
}

func (m *cliMetrics) setSchemasExported(n int) {
	if m == nil {
		return
	}
	m.schemasExported.Set(float64(n))
}

// unregister removes the command's metrics from the registrar.
func (m *cliMetrics) unregister() {
	if m == nil {
		return
	}
	m.registrar.Unregister(appName, metricDocumentsChecked)
	m.registrar.Unregister(appName, metricSchemasExported)
}
