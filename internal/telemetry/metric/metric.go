// Package metric provides the Prometheus metric set for meterd.
package metric

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/yndnr/meterd/internal/core/domain"
)

// namespace prefixes every exported metric name.
const namespace = "meter"

// Set holds all meterd metrics, backed by an explicitly owned
// Prometheus registry rather than the process-global default. The set
// is constructed once at startup and shared by reference; individual
// gauge writes are synchronized by the client library.
type Set struct {
	registry *prometheus.Registry

	// Environmental gauges, updated by the measurement gate after each
	// successful scrape. Values persist across failed scrapes.
	Temperature prometheus.Gauge
	Pressure    prometheus.Gauge
	Humidity    prometheus.Gauge

	// Exporter self-metrics.
	ReadErrors   prometheus.Counter
	LastRead     prometheus.Gauge
	ReadDuration prometheus.Histogram
}

// NewSet creates the metric set and registers every metric.
func NewSet() *Set {
	s := &Set{
		registry: prometheus.NewRegistry(),
	}

	s.Temperature = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "temperature_celsius",
		Help:      "Ambient temperature in Celsius",
	})

	s.Pressure = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pressure_pascals",
		Help:      "Atmospheric pressure in Pascals",
	})

	s.Humidity = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "humidity_percent",
		Help:      "Relative humidity in %",
	})

	s.ReadErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "read_errors_total",
		Help:      "Total number of failed sensor reads",
	})

	s.LastRead = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_read_timestamp_seconds",
		Help:      "Unix timestamp of the last successful sensor read",
	})

	s.ReadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "read_duration_seconds",
		Help:      "Duration of sensor read transactions in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	s.registry.MustRegister(
		s.Temperature,
		s.Pressure,
		s.Humidity,
		s.ReadErrors,
		s.LastRead,
		s.ReadDuration,
	)

	return s
}

// Record writes a successful measurement into the environmental gauges.
func (s *Set) Record(m domain.Measurement) {
	s.Temperature.Set(m.Temperature)
	s.Pressure.Set(m.Pressure)
	s.Humidity.Set(m.Humidity)
	s.LastRead.SetToCurrentTime()
}

// Encode serializes all registered metrics into the text exposition
// format. Output is deterministic for a given set of values: the
// encoder emits metric families in sorted name order.
func (s *Set) Encode(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return domain.ErrEncode.WithCause(err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return domain.ErrEncode.WithCause(err)
		}
	}

	return nil
}
