// Package httpserver provides the HTTP server for meterd.
//
// This package implements the metrics endpoint using stdlib net/http:
//
//   - GET /metrics: read the sensor and return a Prometheus text exposition
//
// Every other method and path combination returns 404 with an empty body.
//
// Features:
//
//   - Middleware chain: Recover, RequestID, AccessLog
//   - Graceful shutdown with configurable timeout
package httpserver
