package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func noWait() backoff.BackOff {
	return &backoff.ZeroBackOff{}
}

func TestYandexClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.0/search/", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("apikey"))
		assert.Equal(t, "s1", q.Get("from"))
		assert.Equal(t, "s2", q.Get("to"))
		assert.Equal(t, "2025-03-01", q.Get("date"))
		assert.Equal(t, "true", q.Get("transfers"))
		assert.Equal(t, "json", q.Get("format"))
		w.Write([]byte(`{"segments": []}`))
	}))
	defer srv.Close()

	c := NewYandexClient(config.ProviderConfig{BaseURL: srv.URL + "/v3.0", APIKey: "key", TimeoutSeconds: 5})

	raw, err := c.Fetch(context.Background(), "s1", "s2", "2025-03-01")
	require.NoError(t, err)
	assert.JSONEq(t, `{"segments": []}`, string(raw))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"segments": []}`))
	}))
	defer srv.Close()

	c := NewYandexClient(config.ProviderConfig{BaseURL: srv.URL, TimeoutSeconds: 5, MaxRetries: 3}, WithBackOff(noWait))

	_, err := c.Fetch(context.Background(), "s1", "s2", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewYandexClient(config.ProviderConfig{BaseURL: srv.URL, TimeoutSeconds: 5, MaxRetries: 2}, WithBackOff(noWait))

	_, err := c.Fetch(context.Background(), "s1", "s2", "2025-03-01")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_ClientErrorIsPermanent(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad station"}`))
	}))
	defer srv.Close()

	c := NewYandexClient(config.ProviderConfig{BaseURL: srv.URL, TimeoutSeconds: 5, MaxRetries: 5}, WithBackOff(noWait))

	_, err := c.Fetch(context.Background(), "s1", "s2", "2025-03-01")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "bad station")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGatewayClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schedule", r.URL.Path)
		assert.Equal(t, "Москва", r.URL.Query().Get("from_station"))
		assert.Equal(t, "Тверь", r.URL.Query().Get("to_station"))
		w.Write([]byte(`{"segments": []}`))
	}))
	defer srv.Close()

	c := NewGatewayClient(srv.URL, 5*time.Second, 0)

	raw, err := c.Fetch(context.Background(), "Москва", "Тверь", "2025-03-01")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

type MockSource struct {
	mock.Mock
}

func (m *MockSource) Fetch(ctx context.Context, from, to, date string) ([]byte, error) {
	args := m.Called(ctx, from, to, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockScheduleCache struct {
	mock.Mock
}

func (m *MockScheduleCache) GetSchedule(ctx context.Context, from, to, date string) ([]byte, error) {
	args := m.Called(ctx, from, to, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockScheduleCache) SetSchedule(ctx context.Context, from, to, date string, raw []byte) error {
	args := m.Called(ctx, from, to, date, raw)
	return args.Error(0)
}

func TestCachedSource_Hit(t *testing.T) {
	ctx := context.Background()
	next := &MockSource{}
	cache := &MockScheduleCache{}
	cache.On("GetSchedule", ctx, "s1", "s2", "2025-03-01").Return([]byte(`{"segments": []}`), nil).Once()

	raw, err := NewCachedSource(next, cache).Fetch(ctx, "s1", "s2", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, `{"segments": []}`, string(raw))

	next.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestCachedSource_MissStores(t *testing.T) {
	ctx := context.Background()
	doc := []byte(`{"segments": []}`)
	next := &MockSource{}
	cache := &MockScheduleCache{}
	cache.On("GetSchedule", ctx, "s1", "s2", "2025-03-01").Return(nil, nil).Once()
	next.On("Fetch", ctx, "s1", "s2", "2025-03-01").Return(doc, nil).Once()
	cache.On("SetSchedule", ctx, "s1", "s2", "2025-03-01", doc).Return(errors.New("redis down")).Once()

	raw, err := NewCachedSource(next, cache).Fetch(ctx, "s1", "s2", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, doc, raw)

	next.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCachedSource_CacheErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	next := &MockSource{}
	cache := &MockScheduleCache{}
	cache.On("GetSchedule", ctx, "s1", "s2", "2025-03-01").Return(nil, errors.New("redis down")).Once()
	next.On("Fetch", ctx, "s1", "s2", "2025-03-01").Return(nil, errors.New("upstream down")).Once()

	_, err := NewCachedSource(next, cache).Fetch(ctx, "s1", "s2", "2025-03-01")
	assert.ErrorContains(t, err, "upstream down")
	cache.AssertNotCalled(t, "SetSchedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
