// Package handler provides HTTP request handlers for meterd.
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/yndnr/meterd/internal/core/domain"
	"github.com/yndnr/meterd/internal/core/service"
	"github.com/yndnr/meterd/internal/telemetry/logger"
	"github.com/yndnr/meterd/internal/telemetry/metric"
)

// expositionContentType is the content type of the Prometheus text
// exposition format.
const expositionContentType = "text/plain; version=0.0.4; charset=utf-8"

// Metrics serves GET /metrics: one fresh sensor read per scrape,
// followed by a full exposition of the metric set.
type Metrics struct {
	meter *service.MeterService
	set   *metric.Set
}

// NewMetrics creates the metrics scrape handler.
func NewMetrics(meter *service.MeterService, set *metric.Set) *Metrics {
	return &Metrics{
		meter: meter,
		set:   set,
	}
}

// ServeHTTP implements http.Handler.
//
// The handler blocks for the duration of one hardware transaction.
// Sensor failures become a 503 and encoding failures a 500; a scrape
// never reports success without a fresh reading behind it.
func (h *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.meter.Measure(ctx); err != nil {
		writeError(w, err)
		return
	}

	// Encode into a buffer first so an encoder failure can still turn
	// into a clean 500 instead of a truncated 200.
	var buf bytes.Buffer
	if err := h.set.Encode(&buf); err != nil {
		logger.L(ctx).Error("metric encoding failed", "error", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", expositionContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Client went away mid-response; nothing further to do.
		logger.L(ctx).Debug("response write failed", "error", err)
	}
}

// errorBody is the JSON error envelope for non-2xx responses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error to an HTTP status and writes the
// error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := domain.GetErrorCode(err)

	switch {
	case domain.IsDomainError(err, "MT-SENS-5030"):
		status = http.StatusServiceUnavailable
	case domain.IsDomainError(err, "MT-ENC-5000"):
		status = http.StatusInternalServerError
	}
	if code == "" {
		code = "MT-SYS-5000"
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{
		Code:    code,
		Message: err.Error(),
	})
}
