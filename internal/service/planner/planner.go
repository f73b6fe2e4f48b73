package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/Domenick1991/tripplanner/internal/kafka"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type PlannerUseCase interface {
	Plan(ctx context.Context, req domain.TripRequest) (*domain.Plan, error)
}

// ScheduleSource returns the raw provider document for one hop.
type ScheduleSource interface {
	Fetch(ctx context.Context, from, to, date string) ([]byte, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// FetchError reports which hop could not be loaded.
type FetchError struct {
	Hop domain.Hop
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch hop %d %s -> %s on %s: %v", e.Hop.Index+1, e.Hop.From, e.Hop.To, e.Hop.Date, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type PlannerService struct {
	source           ScheduleSource
	producer         Producer
	resultsTopic     string
	threshold        time.Duration
	maxFrontier      int
	fetchConcurrency int
	now              func() time.Time
}

type PlannerServiceOption func(*PlannerService)

func WithThreshold(d time.Duration) PlannerServiceOption {
	return func(s *PlannerService) {
		s.threshold = d
	}
}

func WithFrontierLimit(n int) PlannerServiceOption {
	return func(s *PlannerService) {
		s.maxFrontier = n
	}
}

func WithFetchConcurrency(n int) PlannerServiceOption {
	return func(s *PlannerService) {
		s.fetchConcurrency = n
	}
}

// WithProducer publishes a plan_completed event for every successful plan.
func WithProducer(p Producer, topic string) PlannerServiceOption {
	return func(s *PlannerService) {
		s.producer = p
		s.resultsTopic = topic
	}
}

func WithClock(now func() time.Time) PlannerServiceOption {
	return func(s *PlannerService) {
		s.now = now
	}
}

func NewPlannerService(source ScheduleSource, opts ...PlannerServiceOption) *PlannerService {
	service := &PlannerService{
		source:           source,
		threshold:        DefaultTransferThreshold,
		fetchConcurrency: 4,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *PlannerService) Plan(ctx context.Context, req domain.TripRequest) (*domain.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	groups, err := s.loadGroups(ctx, req.Hops())
	if err != nil {
		return nil, err
	}

	itineraries, err := Enumerate(groups, s.threshold, WithMaxFrontier(s.maxFrontier))
	if err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	plan := &domain.Plan{
		ID:          id,
		Request:     req,
		Itineraries: Rank(itineraries),
		CreatedAt:   s.now(),
	}

	log.Info().Str("plan", plan.ID).Int("hops", len(groups)).Int("itineraries", len(plan.Itineraries)).Msg("Plan built")

	if err := s.publish(ctx, plan); err != nil {
		log.Warn().Err(err).Str("plan", plan.ID).Msg("Failed to publish plan event")
	}
	return plan, nil
}

// loadGroups fetches every hop and stores each group at its hop index, so
// group order always follows the request.
func (s *PlannerService) loadGroups(ctx context.Context, hops []domain.Hop) ([]domain.LegGroup, error) {
	groups := make([]domain.LegGroup, len(hops))

	g, gctx := errgroup.WithContext(ctx)
	if s.fetchConcurrency > 0 {
		g.SetLimit(s.fetchConcurrency)
	}
	for _, hop := range hops {
		g.Go(func() error {
			raw, err := s.source.Fetch(gctx, hop.From, hop.To, hop.Date)
			if err != nil {
				return &FetchError{Hop: hop, Err: err}
			}
			group, err := ParseLegs(raw)
			if errors.Is(err, ErrNoSegments) {
				log.Warn().Int("hop", hop.Index+1).Str("from", hop.From).Str("to", hop.To).Msg("Provider returned no segments, hop has no options")
				err = nil
			}
			if err != nil {
				return fmt.Errorf("hop %d %s -> %s: %w", hop.Index+1, hop.From, hop.To, err)
			}
			groups[hop.Index] = group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *PlannerService) publish(ctx context.Context, plan *domain.Plan) error {
	if s.producer == nil || s.resultsTopic == "" {
		return nil
	}
	return s.producer.Publish(ctx, s.resultsTopic, plan.ID, kafka.NewPlanEvent(plan))
}

var _ PlannerUseCase = (*PlannerService)(nil)
