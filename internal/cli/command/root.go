// Package command provides CLI command definitions for meterd.
//
// It uses urfave/cli/v2 for command parsing.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/meterd/internal/infra/buildinfo"
	"github.com/yndnr/meterd/internal/infra/confloader"
	"github.com/yndnr/meterd/internal/server/config"
)

// App creates the CLI application.
func App() *cli.App {
	info := buildinfo.Get()

	return &cli.App{
		Name:    "meterd",
		Usage:   "environmental sensor exporter for Prometheus",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.BuildTime),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ServeCommand(),
			ReadCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			EnvVars: []string{"METERD_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "driver",
			Usage:   "Sensor driver: bme280, sim",
			EnvVars: []string{"METERD_SENSOR_DRIVER"},
		},
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Usage:   "I2C bus device path (e.g., /dev/i2c-1)",
			EnvVars: []string{"METERD_SENSOR_DEVICE"},
		},
		&cli.IntFlag{
			Name:    "address",
			Aliases: []string{"a"},
			Usage:   "Sensor I2C address (0x76 = 118)",
			EnvVars: []string{"METERD_SENSOR_ADDRESS"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"METERD_LOG_LEVEL"},
		},
	}
}

// loadConfig builds the effective configuration from defaults, file,
// environment and command line flags, in that order of precedence.
func loadConfig(c *cli.Context) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile := c.String("config"); configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Flags override file and environment.
	if v := c.String("driver"); v != "" {
		cfg.Sensor.Driver = v
	}
	if v := c.String("device"); v != "" {
		cfg.Sensor.Device = v
	}
	if c.IsSet("address") {
		cfg.Sensor.Address = c.Int("address")
	}
	if v := c.String("log-level"); v != "" {
		cfg.Log.Level = v
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
