package command

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/meterd/internal/core/service"
	"github.com/yndnr/meterd/internal/infra/buildinfo"
	"github.com/yndnr/meterd/internal/infra/confloader"
	"github.com/yndnr/meterd/internal/infra/shutdown"
	"github.com/yndnr/meterd/internal/sensor"
	"github.com/yndnr/meterd/internal/server/config"
	"github.com/yndnr/meterd/internal/server/httpserver"
	"github.com/yndnr/meterd/internal/telemetry/logger"
	"github.com/yndnr/meterd/internal/telemetry/metric"
)

// shutdownTimeout bounds how long in-flight scrapes may run during
// graceful shutdown.
const shutdownTimeout = 15 * time.Second

// ServeCommand returns the serve command.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the metrics HTTP server",
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	info := buildinfo.Get()
	log.Info("starting meterd",
		"version", info.Version,
		"commit", info.Commit,
		"driver", cfg.Sensor.Driver,
		"device", cfg.Sensor.Device)

	// The sensor must be reachable before the listener opens. A scrape
	// target that cannot produce readings should never come up.
	drv, err := sensor.New(cfg.Sensor.Driver, cfg.Sensor.Device, cfg.Sensor.Address)
	if err != nil {
		return fmt.Errorf("open sensor: %w", err)
	}
	if err := drv.Init(); err != nil {
		if cerr := drv.Close(); cerr != nil {
			log.Warn("sensor close after failed init", "error", cerr)
		}
		return fmt.Errorf("init sensor: %w", err)
	}

	set := metric.NewSet()
	meter := service.NewMeterService(drv, set, log)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Meter:   meter,
		Metrics: set,
		Logger:  log,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(shutdownTimeout)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("closing sensor")
		return meter.Close()
	})

	// Re-apply the log level when the config file changes.
	if configFile := c.String("config"); configFile != "" {
		watcher, err := startConfigWatcher(configFile, log)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(ctx context.Context) error {
				return watcher.Stop()
			})
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- shutdownHandler.Wait()
	}()

	select {
	case err := <-serveErr:
		// Listener never came up (or died); tear down and fail the
		// command instead of idling as a server that serves nothing.
		log.Error("HTTP server error", "error", err)
		if shutErr := shutdownHandler.Run(); shutErr != nil {
			log.Error("shutdown error", "error", shutErr)
		}
		return fmt.Errorf("http server: %w", err)
	case err := <-waitErr:
		if err != nil {
			log.Error("shutdown error", "error", err)
			return err
		}
	}

	log.Info("server stopped gracefully")
	return nil
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// startConfigWatcher watches the config file and applies log level
// changes without a restart.
func startConfigWatcher(path string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}

	if err := watcher.Watch(path); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(changed string) {
		// Events cover the whole directory; only react to our file.
		if filepath.Clean(changed) != filepath.Clean(path) {
			return
		}

		loader := confloader.NewLoader(confloader.WithConfigFile(path))

		cfg := config.Default()
		if err := loader.Load(cfg); err != nil {
			log.Warn("config reload failed", "file", path, "error", err)
			return
		}
		if err := config.Verify(cfg); err != nil {
			log.Warn("config reload rejected", "file", path, "error", err)
			return
		}

		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})

	watcher.StartAsync()
	return watcher, nil
}
