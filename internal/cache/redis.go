package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	scheduleTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, scheduleTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		scheduleTTL: scheduleTTL,
	}
}

// GetSchedule returns nil, nil on a miss.
func (c *RedisCache) GetSchedule(ctx context.Context, from, to, date string) ([]byte, error) {
	data, err := c.client.Get(ctx, scheduleKey(from, to, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (c *RedisCache) SetSchedule(ctx context.Context, from, to, date string, raw []byte) error {
	return c.client.Set(ctx, scheduleKey(from, to, date), raw, c.scheduleTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func scheduleKey(from, to, date string) string {
	return fmt.Sprintf("cache:schedule:%s:%s:%s", from, to, date)
}
