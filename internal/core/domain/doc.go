// Package domain defines the core domain models for meterd.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - Measurement: One environmental reading (temperature, pressure, humidity)
//   - Errors: Domain-specific error definitions with structured codes
//
// The error taxonomy distinguishes fatal startup failures
// (ErrSensorInit) from per-scrape failures recovered at the request
// boundary (ErrSensorRead, ErrEncode).
package domain
