// Package command provides CLI command definitions for meterd.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, config loading
//   - serve.go: Metrics HTTP server
//   - read.go: One-shot measurement
//
// Commands follow a consistent pattern of loading configuration,
// opening the sensor, and either serving or printing a reading.
package command
