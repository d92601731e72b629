package sensor

import (
	"math/rand/v2"

	"github.com/yndnr/meterd/internal/core/domain"
)

// Sim is a simulated sensor for development machines without an I2C
// bus. Readings drift around plausible indoor conditions.
type Sim struct {
	base domain.Measurement
}

// NewSim creates a simulated sensor.
func NewSim() *Sim {
	return &Sim{
		base: domain.Measurement{
			Temperature: 21.0,
			Pressure:    101325.0,
			Humidity:    45.0,
		},
	}
}

// Name returns the driver name.
func (s *Sim) Name() string {
	return "sim"
}

// Init is a no-op for the simulated sensor.
func (s *Sim) Init() error {
	return nil
}

// Measure returns the base reading with small random jitter.
func (s *Sim) Measure() (domain.Measurement, error) {
	return domain.Measurement{
		Temperature: s.base.Temperature + rand.Float64()*2 - 1,
		Pressure:    s.base.Pressure + rand.Float64()*200 - 100,
		Humidity:    s.base.Humidity + rand.Float64()*10 - 5,
	}, nil
}

// Close is a no-op for the simulated sensor.
func (s *Sim) Close() error {
	return nil
}
