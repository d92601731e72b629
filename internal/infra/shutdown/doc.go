// Package shutdown provides graceful shutdown for meterd.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-based forced shutdown
//   - Cleanup hook registration, executed in reverse order
//
// meterd drains the HTTP server and closes the sensor device through
// hooks registered here.
package shutdown
