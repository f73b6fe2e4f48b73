package main

import (
	"context"
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/Domenick1991/tripplanner/internal/kafka"
	"github.com/Domenick1991/tripplanner/internal/service/planner"
	"github.com/rs/zerolog/log"
)

const publishRetries = 3

type failurePublisher interface {
	PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxAttempts int) error
}

type planNotifier interface {
	Send(ctx context.Context, plan *domain.Plan) error
	SendFailure(ctx context.Context, id string, cause error) error
}

type requestHandler struct {
	planner      planner.PlannerUseCase
	producer     failurePublisher
	sender       planNotifier
	resultsTopic string
	now          func() time.Time
}

// handle plans one request. A canceled context is returned as is, so the
// request is left uncommitted and delivered again after restart.
func (h *requestHandler) handle(ctx context.Context, request kafka.PlanRequestMessage) error {
	plan, err := h.planner.Plan(ctx, request.TripRequest())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Info().Str("plan", request.ID).Msg("Worker stopping, request left for redelivery")
			return ctxErr
		}

		log.Error().Err(err).Str("plan", request.ID).Msg("Plan failed")
		if err := h.sender.SendFailure(ctx, request.ID, err); err != nil {
			log.Warn().Err(err).Str("plan", request.ID).Msg("Failed to notify plan failure")
		}
		if h.resultsTopic != "" {
			event := kafka.NewFailedPlanEvent(request.ID, err, h.now())
			if err := h.producer.PublishWithRetry(ctx, h.resultsTopic, request.ID, event, publishRetries); err != nil {
				log.Error().Err(err).Str("plan", request.ID).Msg("Failed to publish plan failure")
			}
		}
		return nil
	}

	return h.sender.Send(ctx, plan)
}
