// Package logger provides structured logging for meterd.
//
// The logger wraps log/slog behind a small interface so components
// depend on behavior, not on a concrete handler. Features:
//
//   - JSON structured logging (default) with a text option
//   - Dynamic global level adjustment (config hot reload)
//   - Context-aware logging with request ID propagation
//   - Package-level default logger for incidental plumbing
package logger
