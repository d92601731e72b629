// Package domain defines the core domain models for meterd.
package domain

// Measurement is one environmental reading taken from the sensor.
//
// A Measurement is produced fresh on every scrape, written into the
// metric set, and discarded. It has no persisted identity.
type Measurement struct {
	// Temperature is the ambient temperature in degrees Celsius.
	Temperature float64

	// Pressure is the atmospheric pressure in Pascals.
	Pressure float64

	// Humidity is the relative humidity in percent (0-100).
	Humidity float64
}
