package provider

import (
	"context"

	"github.com/rs/zerolog/log"
)

type ScheduleCache interface {
	GetSchedule(ctx context.Context, from, to, date string) ([]byte, error)
	SetSchedule(ctx context.Context, from, to, date string, raw []byte) error
}

// CachedSource serves documents from the cache and fills it on a miss.
// Cache failures never fail a fetch.
type CachedSource struct {
	next  Source
	cache ScheduleCache
}

func NewCachedSource(next Source, cache ScheduleCache) *CachedSource {
	return &CachedSource{next: next, cache: cache}
}

func (s *CachedSource) Fetch(ctx context.Context, from, to, date string) ([]byte, error) {
	cached, err := s.cache.GetSchedule(ctx, from, to, date)
	if err != nil {
		log.Warn().Err(err).Str("from", from).Str("to", to).Msg("Schedule cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	raw, err := s.next.Fetch(ctx, from, to, date)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetSchedule(ctx, from, to, date, raw); err != nil {
		log.Warn().Err(err).Str("from", from).Str("to", to).Msg("Schedule cache write failed")
	}
	return raw, nil
}

var _ Source = (*CachedSource)(nil)
