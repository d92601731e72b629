// Package sensor provides hardware drivers for environmental sensors.
package sensor

import "github.com/yndnr/meterd/internal/core/domain"

// Driver is the contract every environmental sensor driver implements.
//
// Drivers are not safe for concurrent use. The measurement gate owns
// the single driver instance and serializes all access to it; nothing
// else may touch the driver after startup.
type Driver interface {
	// Name returns the driver name (e.g., "bme280").
	Name() string

	// Init runs the sensor's initialization sequence. It must be called
	// once, before the first Measure. An Init failure is fatal to
	// process startup.
	Init() error

	// Measure performs exactly one hardware transaction and returns a
	// fresh reading. Errors wrap domain.ErrSensorRead.
	Measure() (domain.Measurement, error)

	// Close releases the underlying bus device.
	Close() error
}

// New opens the driver with the given name.
//
// Supported names are "bme280" (hardware, via I2C devfs) and "sim"
// (simulated readings for development without hardware).
func New(name, device string, addr int) (Driver, error) {
	switch name {
	case "bme280":
		return NewBME280(device, addr)
	case "sim":
		return NewSim(), nil
	default:
		return nil, domain.ErrSensorInit.WithDetails("unknown sensor driver: " + name)
	}
}
