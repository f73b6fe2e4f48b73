package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	resty "gopkg.in/resty.v1"
)

// Source returns one raw schedule document per (from, to, date).
type Source interface {
	Fetch(ctx context.Context, from, to, date string) ([]byte, error)
}

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("schedule provider returned status %d: %s", e.StatusCode, e.Body)
}

type Option func(*client)

// WithBackOff replaces the retry policy. Retries are still capped by the
// configured maximum.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *client) {
		c.newBackOff = newBackOff
	}
}

type client struct {
	http       *resty.Client
	maxRetries int
	newBackOff func() backoff.BackOff
}

func newClient(baseURL string, timeout time.Duration, maxRetries int, opts ...Option) *client {
	c := &client{
		http: resty.New().
			SetHostURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		maxRetries: maxRetries,
		newBackOff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 15 * time.Second
	return b
}

// get retries transport errors, 429 and 5xx. Any other non-2xx status is
// returned straight away.
func (c *client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)

	return backoff.RetryNotifyWithData(func() ([]byte, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			Get(path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, err
		}

		code := resp.StatusCode()
		switch {
		case code >= 200 && code < 300:
			return resp.Body(), nil
		case code == http.StatusTooManyRequests || code >= 500:
			return nil, &StatusError{StatusCode: code, Body: resp.String()}
		default:
			return nil, backoff.Permanent(&StatusError{StatusCode: code, Body: resp.String()})
		}
	}, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("path", path).Dur("retry_in", wait).Msg("Schedule request failed, retrying")
	})
}
