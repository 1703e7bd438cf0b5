// Package metric provides Prometheus instrumentation for semports.
//
// The port schema layer itself performs no I/O; metrics are opt-in. A
// MetricsRegistry owns a private prometheus.Registry with the core metrics
// already registered:
//
//	semports_conversion_total{type,result}   text to value conversions
//	semports_registry_converters             size of a conversion registry
//	semports_registry_manifests              size of a manifest registry
//	semports_ports_declared_total{direction} ports carried by manifests
//
// Hand the core metrics to the registries that should report them:
//
//	metrics := metric.NewMetricsRegistry()
//	conversions := convert.NewDefaultRegistry(convert.WithMetrics(metrics.CoreMetrics()))
//	manifests := component.NewRegistry(component.WithMetrics(metrics.CoreMetrics()))
//
// All Metrics helpers accept a nil receiver, so uninstrumented registries pay
// nothing beyond a nil check.
//
// Summarize flattens gathered counters and gauges for logging from batch tools
// that do not serve an HTTP endpoint.
package metric
