package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, ttl)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_Schedule(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	got, err := c.GetSchedule(ctx, "s1", "s2", "2025-03-01")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.SetSchedule(ctx, "s1", "s2", "2025-03-01", []byte(`{"segments": []}`)))

	got, err = c.GetSchedule(ctx, "s1", "s2", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, `{"segments": []}`, string(got))

	assert.True(t, mr.Exists("cache:schedule:s1:s2:2025-03-01"))
	assert.Equal(t, time.Minute, mr.TTL("cache:schedule:s1:s2:2025-03-01"))

	mr.FastForward(2 * time.Minute)
	got, err = c.GetSchedule(ctx, "s1", "s2", "2025-03-01")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_KeysAreDistinctPerHop(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetSchedule(ctx, "s1", "s2", "2025-03-01", []byte("a")))

	got, err := c.GetSchedule(ctx, "s2", "s1", "2025-03-01")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, c.Ping(ctx))
}

func TestRedisCache_Unavailable(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, err := c.GetSchedule(context.Background(), "s1", "s2", "2025-03-01")
	assert.Error(t, err)
}
