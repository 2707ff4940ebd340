package coinpaprika

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/seenimoa/coinwatch/internal/provider"
)

// tickerFetcher fetches the market ticker for one coin, including its
// quotes map. Currency selection happens at the caller; the full map is
// returned so one fetch serves any target currency.
type tickerFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newTickerFetcher(p *Provider) *tickerFetcher {
	return &tickerFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCoinTicker,
			"Market ticker with per-currency price quotes",
			[]string{provider.ParamCoinID},
			30*time.Second, 10, time.Second,
		),
		p: p,
	}
}

func (f *tickerFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	if err := provider.ValidateParams(params, f.RequiredParams()); err != nil {
		return nil, err
	}
	coinID := params[provider.ParamCoinID]

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	var resp cpTicker
	if err := f.p.getJSON(ctx, f.ModelType(), "/tickers/"+url.PathEscape(coinID), &resp); err != nil {
		return nil, fmt.Errorf("coinpaprika ticker %s: %w", coinID, err)
	}

	ticker, err := mapTicker(resp)
	if err != nil {
		return nil, fmt.Errorf("coinpaprika ticker %s: %w", coinID, err)
	}

	f.CacheSet(cacheKey, ticker)
	return newResult(ticker), nil
}
