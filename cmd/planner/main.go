package main

import (
	"os"
	"time"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/Domenick1991/tripplanner/internal/logging"
	"github.com/Domenick1991/tripplanner/internal/prompt"
	"github.com/Domenick1991/tripplanner/internal/provider"
	"github.com/Domenick1991/tripplanner/internal/report"
	"github.com/Domenick1991/tripplanner/internal/service/planner"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "planner",
		Usage: "Build ranked multi-city routes through the trip planner gateway",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "gateway",
				Usage:   "base URL of the schedule gateway",
				Value:   "http://localhost:8080",
				EnvVars: []string{"PLANNER_GATEWAY"},
			},
			&cli.DurationFlag{
				Name:  "threshold",
				Usage: "minimum layover between connecting legs",
				Value: planner.DefaultTransferThreshold,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "gateway request timeout",
				Value: 30 * time.Second,
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "gateway retries per hop",
				Value: 2,
			},
			&cli.IntFlag{
				Name:  "max-frontier",
				Usage: "abort when more partial routes than this are alive (0 disables)",
				Value: 100000,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
			},
		},
		Action: func(c *cli.Context) error {
			logging.SetupWriter(config.LogConfig{Level: c.String("log-level")}, os.Stderr)

			req, err := prompt.ReadTrip(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}

			source := provider.NewGatewayClient(c.String("gateway"), c.Duration("timeout"), c.Int("retries"))
			service := planner.NewPlannerService(source,
				planner.WithThreshold(c.Duration("threshold")),
				planner.WithFrontierLimit(c.Int("max-frontier")),
			)

			plan, err := service.Plan(c.Context, req)
			if err != nil {
				return err
			}
			return report.Render(os.Stdout, plan.Itineraries)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
