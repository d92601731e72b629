// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"net"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifySensor(&cfg.Sensor); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return nil
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("server.http.addr %q is not a valid host:port: %w", cfg.HTTP.Addr, err)
	}
	return nil
}

func verifySensor(cfg *SensorSection) error {
	switch cfg.Driver {
	case "bme280":
		if cfg.Device == "" {
			return errors.New("sensor.device is required for the bme280 driver")
		}
	case "sim":
		// No device needed.
	default:
		return fmt.Errorf("sensor.driver %q is not supported (use bme280 or sim)", cfg.Driver)
	}

	// 7-bit I2C address space.
	if cfg.Address < 0 || cfg.Address > 0x7F {
		return fmt.Errorf("sensor.address %#x is outside the 7-bit I2C range", cfg.Address)
	}

	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not valid (use debug, info, warn, or error)", cfg.Level)
	}

	switch cfg.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format %q is not valid (use json or text)", cfg.Format)
	}

	return nil
}
