package command

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/meterd/internal/sensor"
)

// ReadCommand returns the read command.
func ReadCommand() *cli.Command {
	return &cli.Command{
		Name:  "read",
		Usage: "Take a single measurement and print it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
		},
		Action: runRead,
	}
}

func runRead(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	drv, err := sensor.New(cfg.Sensor.Driver, cfg.Sensor.Device, cfg.Sensor.Address)
	if err != nil {
		return fmt.Errorf("open sensor: %w", err)
	}
	defer drv.Close()

	if err := drv.Init(); err != nil {
		return fmt.Errorf("init sensor: %w", err)
	}

	m, err := drv.Measure()
	if err != nil {
		return fmt.Errorf("read sensor: %w", err)
	}

	switch c.String("output") {
	case "json":
		out, err := json.MarshalIndent(map[string]float64{
			"temperature_celsius": m.Temperature,
			"pressure_pascals":    m.Pressure,
			"humidity_percent":    m.Humidity,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(out))
	case "text":
		fmt.Fprintf(c.App.Writer, "temperature: %.2f °C\n", m.Temperature)
		fmt.Fprintf(c.App.Writer, "pressure:    %.2f Pa\n", m.Pressure)
		fmt.Fprintf(c.App.Writer, "humidity:    %.2f %%\n", m.Humidity)
	default:
		return fmt.Errorf("unknown output format: %s", c.String("output"))
	}

	return nil
}
