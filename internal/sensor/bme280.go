package sensor

import (
	"github.com/quhar/bme280"
	"golang.org/x/exp/io/i2c"

	"github.com/yndnr/meterd/internal/core/domain"
)

// DefaultDevice is the default I2C bus device path.
const DefaultDevice = "/dev/i2c-1"

// DefaultAddr is the BME280 primary I2C address.
const DefaultAddr = 0x76

// hPaToPa converts the chip's hectopascal pressure output to Pascals.
const hPaToPa = 100.0

// BME280 reads temperature, pressure, and humidity from a Bosch BME280
// attached to a Linux I2C bus.
type BME280 struct {
	dev  *i2c.Device
	chip *bme280.BME280
}

// NewBME280 opens the I2C bus device at the given path and address.
// The sensor is not initialized until Init is called.
func NewBME280(device string, addr int) (*BME280, error) {
	dev, err := i2c.Open(&i2c.Devfs{Dev: device}, addr)
	if err != nil {
		return nil, domain.ErrSensorInit.WithCause(err)
	}

	return &BME280{
		dev:  dev,
		chip: bme280.New(dev),
	}, nil
}

// Name returns the driver name.
func (s *BME280) Name() string {
	return "bme280"
}

// Init runs the BME280 initialization sequence (calibration data read
// and mode configuration).
func (s *BME280) Init() error {
	if err := s.chip.Init(); err != nil {
		return domain.ErrSensorInit.WithCause(err)
	}
	return nil
}

// Measure performs one forced-mode read transaction.
func (s *BME280) Measure() (domain.Measurement, error) {
	temp, press, hum, err := s.chip.EnvData()
	if err != nil {
		return domain.Measurement{}, domain.ErrSensorRead.WithCause(err)
	}

	return domain.Measurement{
		Temperature: temp,
		Pressure:    press * hPaToPa,
		Humidity:    hum,
	}, nil
}

// Close releases the bus device.
func (s *BME280) Close() error {
	return s.dev.Close()
}
