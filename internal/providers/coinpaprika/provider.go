// Package coinpaprika implements the coinpaprika data provider. It wraps
// the public REST API at https://api.coinpaprika.com/v1 (coin list, coin
// details, tickers) into the standard provider/fetcher framework.
//
// The free tier needs no API key; an optional pro key is sent as an
// Authorization header when configured.
package coinpaprika

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/seenimoa/coinwatch/internal/infra"
	"github.com/seenimoa/coinwatch/internal/provider"
)

const (
	providerName   = "coinpaprika"
	defaultBaseURL = "https://api.coinpaprika.com/v1"
)

// Provider implements provider.Provider for coinpaprika.
type Provider struct {
	provider.BaseProvider
	baseURL string
	client  *http.Client
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the API base URL. Used by tests and for the
// pro endpoint.
func WithBaseURL(url string) Option {
	return func(p *Provider) { p.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) { p.client = client }
}

// New creates a coinpaprika provider and registers all fetchers.
func New(opts ...Option) *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"coinpaprika - free cryptocurrency market data",
			"https://coinpaprika.com",
			[]provider.Credential{
				{
					Name:        "api_key",
					Description: "coinpaprika pro API key (free tier works without one)",
					Required:    false,
					EnvVar:      "COINWATCH_API_KEY",
				},
			},
		),
		baseURL: defaultBaseURL,
		client:  infra.NewHTTPClient(30 * time.Second),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.RegisterFetcher(newCoinListFetcher(p))
	p.RegisterFetcher(newCoinDetailFetcher(p))
	p.RegisterFetcher(newTickerFetcher(p))

	return p
}

// Ping verifies connectivity to the coinpaprika API.
func (p *Provider) Ping(ctx context.Context) error {
	_, err := infra.DoGet(ctx, p.client, p.baseURL+"/coins/btc-bitcoin", p.headers())
	if err != nil {
		return fmt.Errorf("coinpaprika ping: %w", err)
	}
	return nil
}

// --- Shared helpers ---

func (p *Provider) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if key := p.Credential("api_key"); key != "" {
		h["Authorization"] = key
	}
	return h
}

// getJSON performs a GET against the API and unmarshals the body into
// dest. Transport failures come back as *infra.TransportError, malformed
// bodies as *provider.DecodeError for the given model.
func (p *Provider) getJSON(ctx context.Context, model provider.ModelType, path string, dest any) error {
	body, err := infra.DoGet(ctx, p.client, p.baseURL+path, p.headers())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &provider.DecodeError{Model: model, Err: err}
	}
	return nil
}

// newResult wraps data in a FetchResult stamped with the current time.
func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
	}
}

// newCachedResult wraps data in a FetchResult marked as cached.
func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
		Cached:    true,
	}
}
