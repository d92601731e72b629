// Package config defines the server configuration structure.
package config

// ServerConfig is the root configuration for meterd.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Sensor SensorSection `koanf:"sensor"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// SensorSection configures the sensor driver.
type SensorSection struct {
	// Driver selects the sensor implementation ("bme280" or "sim").
	Driver string `koanf:"driver"`

	// Device is the I2C bus device path (e.g., "/dev/i2c-1").
	Device string `koanf:"device"`

	// Address is the sensor's I2C address (0x76 for the BME280
	// primary address, 0x77 for the secondary).
	Address int `koanf:"address"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
