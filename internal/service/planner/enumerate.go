package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
)

const DefaultTransferThreshold = 15 * time.Minute

var ErrFrontierLimit = errors.New("too many partial itineraries")

type enumerateOptions struct {
	maxFrontier int
}

type EnumerateOption func(*enumerateOptions)

// WithMaxFrontier bounds the number of partial itineraries kept per hop.
// Zero means no limit.
func WithMaxFrontier(n int) EnumerateOption {
	return func(o *enumerateOptions) {
		o.maxFrontier = n
	}
}

// Gap is the layover between an arrival and the next departure, clamped
// to zero when the departure is not after the arrival.
func Gap(arrival, departure time.Time) time.Duration {
	if !departure.After(arrival) {
		return 0
	}
	return departure.Sub(arrival)
}

func Connects(prev, next domain.Leg, threshold time.Duration) bool {
	return Gap(prev.FinishAt, next.StartAt) > threshold
}

// Enumerate returns every itinerary that takes one leg from each group in
// order, with each connection longer than threshold. The frontier is
// rebuilt hop by hop, so an itinerary that cannot be extended is dropped.
func Enumerate(groups []domain.LegGroup, threshold time.Duration, opts ...EnumerateOption) ([]domain.Itinerary, error) {
	var o enumerateOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(groups) == 0 {
		return []domain.Itinerary{}, nil
	}
	if o.maxFrontier > 0 && len(groups[0]) > o.maxFrontier {
		return nil, fmt.Errorf("%w: hop 1 has %d legs, limit is %d", ErrFrontierLimit, len(groups[0]), o.maxFrontier)
	}

	frontier := make([]domain.Itinerary, 0, len(groups[0]))
	for _, leg := range groups[0] {
		frontier = append(frontier, domain.NewItinerary(leg))
	}

	for g := 1; g < len(groups) && len(frontier) > 0; g++ {
		next := make([]domain.Itinerary, 0, len(frontier))
		for _, it := range frontier {
			last := it.Last()
			for _, leg := range groups[g] {
				if !Connects(last, leg, threshold) {
					continue
				}
				if o.maxFrontier > 0 && len(next) >= o.maxFrontier {
					return nil, fmt.Errorf("%w: hop %d exceeds %d", ErrFrontierLimit, g+1, o.maxFrontier)
				}
				next = append(next, it.Extend(leg))
			}
		}
		frontier = next
	}

	return frontier, nil
}
