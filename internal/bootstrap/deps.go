package bootstrap

import (
	"context"
	"fmt"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/Domenick1991/tripplanner/internal/cache"
	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/Domenick1991/tripplanner/internal/provider"
	"github.com/Domenick1991/tripplanner/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// LoadStations reads station codes from the configured source.
func LoadStations(ctx context.Context, cfg *config.Config) (*domain.StationCodes, error) {
	var repo repository.StationRepository
	switch cfg.Stations.Source {
	case "file":
		repo = repository.NewFileStationRepository(cfg.Stations.File)
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		repo = repository.NewStationRepository(pool)
	default:
		return nil, fmt.Errorf("unknown stations source %q", cfg.Stations.Source)
	}

	codes, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}
	log.Info().Str("source", cfg.Stations.Source).Int("titles", codes.Len()).Msg("Station codes loaded")
	return codes, nil
}

// NewScheduleSource builds the provider client, wrapped in the Redis cache
// when Redis is configured and reachable. The returned func releases the cache.
func NewScheduleSource(ctx context.Context, cfg *config.Config) (provider.Source, func()) {
	var source provider.Source = provider.NewYandexClient(cfg.Provider)
	if cfg.Redis.Addr == "" {
		return source, func() {}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Redis.ScheduleTTL())
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, schedule cache disabled")
		_ = redisCache.Close()
		return source, func() {}
	}
	log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.ScheduleTTL()).Msg("Schedule cache enabled")

	return provider.NewCachedSource(source, redisCache), func() {
		if err := redisCache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
}
