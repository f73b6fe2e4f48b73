package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/tripplanner/api"
	"github.com/Domenick1991/tripplanner/config"
	"github.com/Domenick1991/tripplanner/internal/bootstrap"
	"github.com/Domenick1991/tripplanner/internal/kafka"
	"github.com/Domenick1991/tripplanner/internal/logging"
	"github.com/Domenick1991/tripplanner/internal/service/planner"
	"github.com/Domenick1991/tripplanner/internal/service/stations"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	codes, err := bootstrap.LoadStations(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("station codes")
	}
	resolver := stations.NewResolver(codes)

	source, release := bootstrap.NewScheduleSource(ctx, cfg)
	defer release()

	opts := []planner.PlannerServiceOption{
		planner.WithThreshold(cfg.Planner.TransferThreshold()),
		planner.WithFrontierLimit(cfg.Planner.FrontierLimit()),
		planner.WithFetchConcurrency(cfg.Planner.FetchConcurrency),
	}
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.PlanResultsTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn().Err(err).Msg("Kafka check failed, plan events may be lost")
		}
		opts = append(opts, planner.WithProducer(producer, cfg.Kafka.PlanResultsTopic))
	}
	plannerService := planner.NewPlannerService(source, opts...)

	scheduleHandler := api.NewScheduleHandler(resolver, source, api.WithResultsDir(cfg.HTTP.ResultsDir))
	planHandler := api.NewPlanHandler(plannerService)

	if err := bootstrap.Run(ctx, cfg, scheduleHandler, planHandler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
