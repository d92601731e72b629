// Package main provides the entry point for meterd.
//
// meterd reads a BME280 environmental sensor over I2C and exposes
// temperature, pressure and humidity as Prometheus metrics.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/meterd/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
