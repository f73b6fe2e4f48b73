package provider

import (
	"context"
	"time"
)

// GatewayClient fetches schedules through this service's own
// /api/schedule endpoint, which resolves station names to codes.
type GatewayClient struct {
	*client
}

func NewGatewayClient(baseURL string, timeout time.Duration, maxRetries int, opts ...Option) *GatewayClient {
	return &GatewayClient{client: newClient(baseURL, timeout, maxRetries, opts...)}
}

func (c *GatewayClient) Fetch(ctx context.Context, from, to, date string) ([]byte, error) {
	return c.get(ctx, "/api/schedule", map[string]string{
		"from_station": from,
		"to_station":   to,
		"date":         date,
		"transfers":    "true",
	})
}

var _ Source = (*GatewayClient)(nil)
