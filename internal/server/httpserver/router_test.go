package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yndnr/meterd/internal/core/domain"
	"github.com/yndnr/meterd/internal/core/service"
	"github.com/yndnr/meterd/internal/telemetry/logger"
	"github.com/yndnr/meterd/internal/telemetry/metric"
)

// fakeDriver implements sensor.Driver for testing.
type fakeDriver struct {
	mu         sync.Mutex
	readings   []domain.Measurement
	next       int
	err        error
	inFlight   atomic.Int32
	violations atomic.Int32
}

func (d *fakeDriver) Name() string { return "fake" }
func (d *fakeDriver) Init() error  { return nil }
func (d *fakeDriver) Close() error { return nil }

func (d *fakeDriver) Measure() (domain.Measurement, error) {
	if d.inFlight.Add(1) > 1 {
		d.violations.Add(1)
	}
	time.Sleep(time.Millisecond) // widen the window so overlap is observable
	defer d.inFlight.Add(-1)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return domain.Measurement{}, d.err
	}
	if len(d.readings) == 0 {
		return domain.Measurement{Temperature: 21.0, Pressure: 101325.0, Humidity: 45.0}, nil
	}
	m := d.readings[d.next%len(d.readings)]
	d.next++
	return m, nil
}

func (d *fakeDriver) setError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

func discardLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "text", Output: io.Discard})
	if err != nil {
		t.Fatalf("logger.New error: %v", err)
	}
	return log
}

// newTestRouter builds a router backed by the given driver.
func newTestRouter(t *testing.T, drv *fakeDriver) (http.Handler, *metric.Set) {
	t.Helper()

	set := metric.NewSet()
	meter := service.NewMeterService(drv, set, discardLogger(t))

	rt := NewRouter(&RouterConfig{
		Meter:   meter,
		Metrics: set,
		Logger:  discardLogger(t),
	})
	return rt, set
}

func TestRouter_MetricsOK(t *testing.T) {
	drv := &fakeDriver{readings: []domain.Measurement{
		{Temperature: 22.5, Pressure: 100800.0, Humidity: 51.0},
	}}
	rt, _ := newTestRouter(t, drv)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain exposition", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"meter_temperature_celsius 22.5",
		"meter_pressure_pascals 100800",
		"meter_humidity_percent 51",
		"# HELP meter_temperature_celsius Ambient temperature in Celsius",
		"# HELP meter_pressure_pascals Atmospheric pressure in Pascals",
		"# HELP meter_humidity_percent Relative humidity in %",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q\nbody:\n%s", want, body)
		}
	}
}

func TestRouter_NotFound(t *testing.T) {
	drv := &fakeDriver{}
	rt, _ := newTestRouter(t, drv)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/metrics/"},
		{http.MethodGet, "/Metrics"},
		{http.MethodPost, "/metrics"},
		{http.MethodPut, "/metrics"},
		{http.MethodDelete, "/metrics"},
		{http.MethodHead, "/other"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
			}
			if rec.Body.Len() != 0 {
				t.Errorf("body = %q, want empty", rec.Body.String())
			}
		})
	}
}

func TestRouter_SensorError(t *testing.T) {
	drv := &fakeDriver{readings: []domain.Measurement{
		{Temperature: 19.0, Pressure: 101000.0, Humidity: 40.0},
	}}
	rt, _ := newTestRouter(t, drv)

	// Prime the gauges with one good scrape.
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("priming scrape status = %d, want 200", rec.Code)
	}

	drv.setError(domain.ErrSensorRead.WithDetails("bus stuck"))

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if got := rec.Header().Get("X-Error-Code"); got != "MT-SENS-5030" {
		t.Errorf("X-Error-Code = %q, want MT-SENS-5030", got)
	}

	// The failed scrape must not have clobbered the gauges.
	drv.setError(nil)
	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "meter_temperature_celsius 19") {
		t.Errorf("gauges changed after failed read:\n%s", rec.Body.String())
	}
}

func TestRouter_SequentialScrapesDistinct(t *testing.T) {
	drv := &fakeDriver{readings: []domain.Measurement{
		{Temperature: 18.0, Pressure: 101200.0, Humidity: 38.0},
		{Temperature: 24.0, Pressure: 100500.0, Humidity: 55.0},
	}}
	rt, _ := newTestRouter(t, drv)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	first := rec.Body.String()

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	second := rec.Body.String()

	if !strings.Contains(first, "meter_temperature_celsius 18") {
		t.Errorf("first scrape missing first reading:\n%s", first)
	}
	if !strings.Contains(second, "meter_temperature_celsius 24") {
		t.Errorf("second scrape missing second reading:\n%s", second)
	}
	if strings.Contains(second, "meter_temperature_celsius 18") {
		t.Errorf("second scrape still reports stale value:\n%s", second)
	}
}

func TestRouter_ConcurrentScrapes(t *testing.T) {
	drv := &fakeDriver{}
	rt, _ := newTestRouter(t, drv)

	srv := httptest.NewServer(rt)
	defer srv.Close()

	const workers = 16
	const perWorker = 5

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				resp, err := http.Get(srv.URL + "/metrics")
				if err != nil {
					t.Errorf("GET /metrics error: %v", err)
					return
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					t.Errorf("status = %d, want 200", resp.StatusCode)
				}
			}
		}()
	}
	wg.Wait()

	if v := drv.violations.Load(); v != 0 {
		t.Errorf("detected %d overlapping sensor transactions", v)
	}
}
