// cmd/analytics/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/invensight/backend-go/internal/forecast"
)

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "items",
			Usage:    "Path to the items JSON file",
			Required: true,
			EnvVars:  []string{"ANALYTICS_ITEMS_FILE"},
		},
		&cli.StringFlag{
			Name:    "transactions",
			Usage:   "Path to the transactions JSON file",
			EnvVars: []string{"ANALYTICS_TRANSACTIONS_FILE"},
		},
		&cli.StringFlag{
			Name:    "movements",
			Usage:   "Path to the stock movements JSON file",
			EnvVars: []string{"ANALYTICS_MOVEMENTS_FILE"},
		},
		&cli.StringFlag{
			Name:  "now",
			Usage: "Reference date (YYYY-MM-DD) for the trailing demand window, defaults to today",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the JSON result to this file instead of stdout",
		},
		&cli.Float64Flag{
			Name:  "service-level",
			Usage: "Target service level for safety stock sizing",
			Value: 0.95,
		},
		&cli.IntFlag{
			Name:  "periods",
			Usage: "Number of forecast periods",
			Value: 3,
		},
	}
}

func buildEngine(c *cli.Context) (*forecast.Engine, error) {
	snap, err := loadSnapshot(c.String("items"), c.String("movements"), c.String("transactions"))
	if err != nil {
		return nil, err
	}

	params := forecast.DefaultParams()
	params.ServiceLevel = c.Float64("service-level")
	params.ForecastPeriods = c.Int("periods")

	opts := []forecast.Option{forecast.WithParams(params)}
	if nowStr := c.String("now"); nowStr != "" {
		now, err := time.Parse("2006-01-02", nowStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --now value %q: %w", nowStr, err)
		}
		opts = append(opts, forecast.WithNow(now))
	}

	return forecast.NewEngine(snap.Items, snap.Movements, snap.Transactions, opts...), nil
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	app := &cli.App{
		Name:  "analytics",
		Usage: "Run the inventory forecast engine over exported records",
		Commands: []*cli.Command{
			{
				Name:  "predict",
				Usage: "Generate per-item demand predictions",
				Flags: append(inputFlags(), &cli.StringFlag{
					Name:  "format",
					Usage: "Output format: json or csv",
					Value: "json",
				}),
				Action: func(c *cli.Context) error {
					engine, err := buildEngine(c)
					if err != nil {
						return err
					}
					predictions, err := engine.GeneratePredictions(c.Context)
					if err != nil {
						return err
					}
					switch c.String("format") {
					case "csv":
						return writePredictionsCSV(c.String("output"), predictions)
					case "json":
						return writeResult(c.String("output"), predictions)
					default:
						return fmt.Errorf("unknown format %q", c.String("format"))
					}
				},
			},
			{
				Name:  "optimize",
				Usage: "Model inventory costs and emit restocking recommendations",
				Flags: inputFlags(),
				Action: func(c *cli.Context) error {
					engine, err := buildEngine(c)
					if err != nil {
						return err
					}
					optimization, err := engine.OptimizeInventory(c.Context)
					if err != nil {
						return err
					}
					return writeResult(c.String("output"), optimization)
				},
			},
			{
				Name:  "abc",
				Usage: "Classify items by annual value concentration",
				Flags: inputFlags(),
				Action: func(c *cli.Context) error {
					engine, err := buildEngine(c)
					if err != nil {
						return err
					}
					return writeResult(c.String("output"), engine.GenerateABCAnalysis())
				},
			},
			{
				Name:  "alerts",
				Usage: "Evaluate predictive alert rules",
				Flags: inputFlags(),
				Action: func(c *cli.Context) error {
					engine, err := buildEngine(c)
					if err != nil {
						return err
					}
					predictions, err := engine.GeneratePredictions(c.Context)
					if err != nil {
						return err
					}
					return writeResult(c.String("output"), engine.GeneratePredictiveAlerts(predictions))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
