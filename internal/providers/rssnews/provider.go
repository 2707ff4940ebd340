// Package rssnews implements a crypto market news provider backed by
// public RSS feeds. Feed entries are normalized into models.NewsArticle
// with HTML stripped from summaries.
package rssnews

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/coinwatch/internal/provider"
	"github.com/seenimoa/coinwatch/pkg/models"
)

const providerName = "rssnews"

// Source is one RSS feed to pull articles from.
type Source struct {
	Name string
	URL  string
}

// DefaultSources lists the crypto news feeds polled out of the box.
var DefaultSources = []Source{
	{Name: "CoinDesk", URL: "https://www.coindesk.com/arc/outboundfeeds/rss/"},
	{Name: "Cointelegraph", URL: "https://cointelegraph.com/rss"},
	{Name: "Decrypt", URL: "https://decrypt.co/feed"},
	{Name: "Bitcoin Magazine", URL: "https://bitcoinmagazine.com/feed"},
}

// Provider implements provider.Provider over RSS feeds.
type Provider struct {
	provider.BaseProvider
	sources []Source
	parser  *gofeed.Parser
}

// Option configures a Provider.
type Option func(*Provider)

// WithSources replaces the default feed list.
func WithSources(sources []Source) Option {
	return func(p *Provider) { p.sources = sources }
}

// New creates an RSS news provider.
func New(opts ...Option) *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Crypto market news from public RSS feeds",
			"",
			nil,
		),
		sources: DefaultSources,
		parser:  gofeed.NewParser(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.RegisterFetcher(newMarketNewsFetcher(p))
	return p
}

// Ping verifies that at least one configured feed is reachable.
func (p *Provider) Ping(ctx context.Context) error {
	var lastErr error
	for _, src := range p.sources {
		if _, err := p.parser.ParseURLWithContext(src.URL, ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("rssnews ping: no feed reachable: %w", lastErr)
}

// --- MarketNews fetcher ---

type marketNewsFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newMarketNewsFetcher(p *Provider) *marketNewsFetcher {
	return &marketNewsFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelMarketNews,
			"Recent crypto market news from all configured feeds",
			nil,
			10*time.Minute, 2, time.Second,
		),
		p: p,
	}
}

func (f *marketNewsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	limit := 0
	if v := params[provider.ParamLimit]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("rssnews: invalid limit %q", v)
		}
		limit = n
	}

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return &provider.FetchResult{Data: cached, FetchedAt: time.Now(), Cached: true}, nil
	}

	var articles []models.NewsArticle
	for _, src := range f.p.sources {
		if err := f.RateLimit(ctx); err != nil {
			return nil, err
		}
		items, err := f.p.fetchFeed(ctx, src)
		if err != nil {
			// A dead feed is not fatal; the remaining sources still serve.
			continue
		}
		articles = append(articles, items...)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	f.CacheSet(cacheKey, articles)
	return &provider.FetchResult{Data: articles, FetchedAt: time.Now()}, nil
}

// fetchFeed parses one RSS feed into articles.
func (p *Provider) fetchFeed(ctx context.Context, src Source) ([]models.NewsArticle, error) {
	feed, err := p.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.Name, err)
	}

	articles := make([]models.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := models.NewsArticle{
			Title:   item.Title,
			URL:     item.Link,
			Source:  src.Name,
			Summary: stripHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// stripHTML removes markup from a feed summary using goquery.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
