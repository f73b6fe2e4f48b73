package provider

import (
	"context"

	"github.com/Domenick1991/tripplanner/config"
)

// YandexClient queries the Yandex Rasp search API directly.
type YandexClient struct {
	*client
	apiKey string
}

func NewYandexClient(cfg config.ProviderConfig, opts ...Option) *YandexClient {
	return &YandexClient{
		client: newClient(cfg.BaseURL, cfg.Timeout(), cfg.MaxRetries, opts...),
		apiKey: cfg.APIKey,
	}
}

func (c *YandexClient) Fetch(ctx context.Context, from, to, date string) ([]byte, error) {
	return c.get(ctx, "/search/", map[string]string{
		"apikey":    c.apiKey,
		"format":    "json",
		"from":      from,
		"to":        to,
		"lang":      "ru_RU",
		"date":      date,
		"transfers": "true",
	})
}

var _ Source = (*YandexClient)(nil)
