// Package metric provides the Prometheus metric set for meterd.
//
// It exposes the three environmental gauges (temperature, pressure,
// humidity) plus exporter self-metrics (read errors, last read
// timestamp, read duration) on a registry owned by the Set rather
// than the global default registry, keeping initialization order and
// testability explicit.
package metric
