// Package service provides domain services for meterd.
//
// Domain services contain the business logic and orchestrate operations
// on domain models.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/yndnr/meterd/internal/core/domain"
	"github.com/yndnr/meterd/internal/sensor"
	"github.com/yndnr/meterd/internal/telemetry/logger"
	"github.com/yndnr/meterd/internal/telemetry/metric"
)

// MeterService is the measurement gate: it owns the single sensor
// driver handle and serializes all hardware access behind a mutex.
//
// At most one hardware transaction is in flight at any time. No
// fairness is guaranteed between queued callers; only mutual
// exclusion. On success the three environmental gauges are updated
// while the lock is still held, so two interleaved scrapes can never
// leave the metric set with values from two different transactions.
type MeterService struct {
	mu     sync.Mutex
	driver sensor.Driver
	set    *metric.Set
	logger logger.Logger
}

// NewMeterService creates the measurement gate. The driver must
// already be initialized; the gate takes exclusive ownership of it.
func NewMeterService(driver sensor.Driver, set *metric.Set, log logger.Logger) *MeterService {
	if log == nil {
		log = logger.Default()
	}
	return &MeterService{
		driver: driver,
		set:    set,
		logger: log,
	}
}

// Measure acquires exclusive access to the sensor, performs exactly
// one hardware transaction, and on success records the reading in the
// metric set.
//
// The hardware read has no cancellation point: a caller that goes
// away mid-read does not abort the transaction, the result is simply
// discarded by the caller. The context parameter is accepted for
// interface symmetry and request-scoped logging only.
//
// Driver failures are returned as domain.ErrSensorRead; the lock is
// always released, a failed read never wedges the next caller, and
// previously recorded gauge values are left untouched.
func (s *MeterService) Measure(ctx context.Context) (domain.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	m, err := s.driver.Measure()
	s.set.ReadDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.set.ReadErrors.Inc()
		logger.L(ctx).Error("sensor read failed",
			"driver", s.driver.Name(),
			"error", err,
		)
		if domain.IsDomainError(err, "") {
			return domain.Measurement{}, err
		}
		return domain.Measurement{}, domain.ErrSensorRead.WithCause(err)
	}

	s.set.Record(m)

	logger.L(ctx).Debug("sensor read complete",
		"driver", s.driver.Name(),
		"temperature_celsius", m.Temperature,
		"pressure_pascals", m.Pressure,
		"humidity_percent", m.Humidity,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return m, nil
}

// Close releases the sensor driver. It takes the same lock as Measure
// so an in-flight transaction completes before the device is closed.
func (s *MeterService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("closing sensor", "driver", s.driver.Name())
	return s.driver.Close()
}
