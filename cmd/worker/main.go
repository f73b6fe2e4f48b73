package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/Domenick1991/tripplanner/internal/bootstrap"
	"github.com/Domenick1991/tripplanner/internal/kafka"
	"github.com/Domenick1991/tripplanner/internal/logging"
	"github.com/Domenick1991/tripplanner/internal/notify"
	"github.com/Domenick1991/tripplanner/internal/service/planner"
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

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.PlanRequestsTopic == "" {
		log.Fatal().Msg("kafka.brokers and kafka.plan_requests_topic are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, release := bootstrap.NewScheduleSource(ctx, cfg)
	defer release()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	plannerService := planner.NewPlannerService(source,
		planner.WithThreshold(cfg.Planner.TransferThreshold()),
		planner.WithFrontierLimit(cfg.Planner.FrontierLimit()),
		planner.WithFetchConcurrency(cfg.Planner.FetchConcurrency),
		planner.WithProducer(producer, cfg.Kafka.PlanResultsTopic),
	)

	sender := notify.NewSender()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PlanRequestsTopic)
	defer consumer.Close()

	log.Info().Str("topic", cfg.Kafka.PlanRequestsTopic).Msg("Worker started")

	handler := &requestHandler{
		planner:      plannerService,
		producer:     producer,
		sender:       sender,
		resultsTopic: cfg.Kafka.PlanResultsTopic,
		now:          time.Now,
	}
	err = consumer.ConsumePlanRequests(ctx, handler.handle)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("consumer stopped")
	}
	log.Info().Msg("Worker stopped")
}
