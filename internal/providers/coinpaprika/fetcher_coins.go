package coinpaprika

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/seenimoa/coinwatch/internal/provider"
	"github.com/seenimoa/coinwatch/pkg/models"
)

// --- CoinList fetcher ---

type coinListFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newCoinListFetcher(p *Provider) *coinListFetcher {
	return &coinListFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCoinList,
			"List of all coins known to coinpaprika",
			nil,
			5*time.Minute, 10, time.Second,
		),
		p: p,
	}
}

func (f *coinListFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	var rows []cpCoin
	if err := f.p.getJSON(ctx, f.ModelType(), "/coins", &rows); err != nil {
		return nil, fmt.Errorf("coinpaprika coin list: %w", err)
	}

	coins := make([]models.CoinSummary, 0, len(rows))
	for _, row := range rows {
		coin, err := mapCoin(row)
		if err != nil {
			return nil, fmt.Errorf("coinpaprika coin list: %w", err)
		}
		coins = append(coins, coin)
	}

	f.CacheSet(cacheKey, coins)
	return newResult(coins), nil
}

// --- CoinDetail fetcher ---

type coinDetailFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newCoinDetailFetcher(p *Provider) *coinDetailFetcher {
	return &coinDetailFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCoinDetail,
			"Details for a single coin",
			[]string{provider.ParamCoinID},
			time.Hour, 10, time.Second,
		),
		p: p,
	}
}

func (f *coinDetailFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
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

	var resp cpCoinDetail
	if err := f.p.getJSON(ctx, f.ModelType(), "/coins/"+url.PathEscape(coinID), &resp); err != nil {
		return nil, fmt.Errorf("coinpaprika coin %s: %w", coinID, err)
	}

	detail, err := mapCoinDetail(resp)
	if err != nil {
		return nil, fmt.Errorf("coinpaprika coin %s: %w", coinID, err)
	}

	f.CacheSet(cacheKey, detail)
	return newResult(detail), nil
}
