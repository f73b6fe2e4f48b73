package main

import (
	"fmt"
	"os"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/Domenick1991/tripplanner/internal/logging"
	"github.com/Domenick1991/tripplanner/internal/repository"
	"github.com/Domenick1991/tripplanner/internal/service/stations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "converter",
		Usage: "Flatten the provider stations list into a title to codes mapping",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "in",
				Usage: "stations list document",
				Value: "datasource/rasp.json",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output codes file",
				Value: "datasource/codes.json",
			},
			&cli.BoolFlag{
				Name:  "db",
				Usage: "also store the codes in PostgreSQL (database section of the config)",
			},
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: func(c *cli.Context) error {
			logging.Setup(config.LogConfig{Level: "info"})

			in, err := os.Open(c.String("in"))
			if err != nil {
				return fmt.Errorf("open stations list: %w", err)
			}
			defer in.Close()

			repos := []repository.StationRepository{repository.NewFileStationRepository(c.String("out"))}

			if c.Bool("db") {
				cfg, err := config.LoadConfig(c.String("config"))
				if err != nil {
					return err
				}
				pool, err := pgxpool.New(c.Context, cfg.Database.DSN())
				if err != nil {
					return fmt.Errorf("connect postgres: %w", err)
				}
				defer pool.Close()

				pgRepo := repository.NewStationRepository(pool)
				if err := pgRepo.EnsureSchema(c.Context); err != nil {
					return err
				}
				repos = append(repos, pgRepo)
			}

			codes, err := stations.Convert(c.Context, in, repos...)
			if err != nil {
				return err
			}
			log.Info().Str("out", c.String("out")).Int("titles", codes.Len()).Msg("Station codes written")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
