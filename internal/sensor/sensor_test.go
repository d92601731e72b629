package sensor

import (
	"errors"
	"testing"

	"github.com/yndnr/meterd/internal/core/domain"
)

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New("bogus", DefaultDevice, DefaultAddr)
	if err == nil {
		t.Fatal("New() should fail for an unknown driver name")
	}
	if !errors.Is(err, domain.ErrSensorInit) {
		t.Errorf("error = %v, want ErrSensorInit", err)
	}
}

func TestNew_Sim(t *testing.T) {
	d, err := New("sim", "", 0)
	if err != nil {
		t.Fatalf("New(sim) error = %v", err)
	}
	if d.Name() != "sim" {
		t.Errorf("Name() = %q, want %q", d.Name(), "sim")
	}
	if err := d.Init(); err != nil {
		t.Errorf("Init() error = %v", err)
	}
	defer d.Close()
}

func TestSim_MeasureRange(t *testing.T) {
	s := NewSim()

	for i := 0; i < 100; i++ {
		m, err := s.Measure()
		if err != nil {
			t.Fatalf("Measure() error = %v", err)
		}
		if m.Temperature < 15 || m.Temperature > 30 {
			t.Errorf("Temperature = %v, outside plausible indoor range", m.Temperature)
		}
		if m.Pressure < 100000 || m.Pressure > 103000 {
			t.Errorf("Pressure = %v, outside plausible range", m.Pressure)
		}
		if m.Humidity < 30 || m.Humidity > 60 {
			t.Errorf("Humidity = %v, outside plausible range", m.Humidity)
		}
	}
}

func TestNewBME280_MissingDevice(t *testing.T) {
	// No I2C bus on test machines; opening a nonexistent devfs path
	// must surface a typed init error, not a panic.
	_, err := NewBME280("/dev/nonexistent-i2c-bus", DefaultAddr)
	if err == nil {
		t.Skip("unexpectedly opened device, running on hardware?")
	}
	if !errors.Is(err, domain.ErrSensorInit) {
		t.Errorf("error = %v, want ErrSensorInit", err)
	}
}
