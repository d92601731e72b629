// Package config defines the server configuration structure.
package config

// Default configuration values.
const (
	DefaultHTTPAddr = "0.0.0.0:3002"

	DefaultSensorDriver  = "bme280"
	DefaultSensorDevice  = "/dev/i2c-1"
	DefaultSensorAddress = 0x76

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr: DefaultHTTPAddr,
			},
		},
		Sensor: SensorSection{
			Driver:  DefaultSensorDriver,
			Device:  DefaultSensorDevice,
			Address: DefaultSensorAddress,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
