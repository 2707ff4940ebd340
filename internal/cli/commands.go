// Package cli implements the command dispatcher. Each command is a
// straight-line sequence: fetch through the provider registry, then
// format through render. Output goes to the App's writer so commands
// can be tested against a buffer.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/coinwatch/internal/provider"
	"github.com/seenimoa/coinwatch/internal/render"
	"github.com/seenimoa/coinwatch/pkg/models"
)

// QuoteNotFoundError reports a currency absent from a ticker's quotes.
// CoinPrice treats it as a soft outcome; CompareCoins fails on it.
type QuoteNotFoundError struct {
	CoinID   string
	Currency string
}

func (e *QuoteNotFoundError) Error() string {
	return fmt.Sprintf("no price for %s in %s", e.CoinID, e.Currency)
}

// App wires the provider registry to an output writer.
type App struct {
	registry *provider.Registry
	out      io.Writer
}

// New creates an App writing to out.
func New(registry *provider.Registry, out io.Writer) *App {
	return &App{registry: registry, out: out}
}

// ListCoins prints one line per known coin, in the order the provider
// returned them.
func (a *App) ListCoins(ctx context.Context) error {
	res, err := a.registry.Fetch(ctx, provider.ModelCoinList, provider.QueryParams{})
	if err != nil {
		return err
	}
	coins, ok := res.Data.([]models.CoinSummary)
	if !ok {
		return fmt.Errorf("unexpected coin list data type %T", res.Data)
	}

	render.CoinList(a.out, coins)
	return nil
}

// CoinDetails prints all fields of one coin.
func (a *App) CoinDetails(ctx context.Context, coinID string) error {
	res, err := a.registry.Fetch(ctx, provider.ModelCoinDetail, provider.QueryParams{
		provider.ParamCoinID: coinID,
	})
	if err != nil {
		return err
	}
	detail, ok := res.Data.(*models.CoinDetail)
	if !ok {
		return fmt.Errorf("unexpected coin detail data type %T", res.Data)
	}

	render.CoinDetail(a.out, detail)
	return nil
}

// CoinPrice prints the price of a coin in the target currency. A missing
// quote prints a message and is not an error: the command still exits
// successfully.
func (a *App) CoinPrice(ctx context.Context, coinID, currency string) error {
	ticker, err := a.fetchTicker(ctx, coinID)
	if err != nil {
		return err
	}

	cur := strings.ToUpper(currency)
	q, ok := ticker.Quote(cur)
	if !ok {
		render.PriceNotFound(a.out, ticker, cur)
		return nil
	}

	render.Price(a.out, ticker, cur, q)
	return nil
}

// CompareCoins prints both coins' prices in the target currency and
// which coin is more valuable. Unlike CoinPrice, a missing quote for
// either coin fails the whole command before anything is printed.
func (a *App) CompareCoins(ctx context.Context, coin1ID, coin2ID, currency string) error {
	// The two fetches are deliberately sequential.
	p1, err := a.priceOf(ctx, coin1ID, currency)
	if err != nil {
		return err
	}
	p2, err := a.priceOf(ctx, coin2ID, currency)
	if err != nil {
		return err
	}

	render.Comparison(a.out, coin1ID, coin2ID, strings.ToUpper(currency), p1, p2)
	return nil
}

// News prints recent crypto market news, newest first.
func (a *App) News(ctx context.Context, limit int) error {
	params := provider.QueryParams{}
	if limit > 0 {
		params[provider.ParamLimit] = strconv.Itoa(limit)
	}
	res, err := a.registry.Fetch(ctx, provider.ModelMarketNews, params)
	if err != nil {
		return err
	}
	articles, ok := res.Data.([]models.NewsArticle)
	if !ok {
		return fmt.Errorf("unexpected news data type %T", res.Data)
	}

	render.News(a.out, articles)
	return nil
}

// Providers prints the registered providers and their model coverage.
func (a *App) Providers() error {
	render.Providers(a.out, a.registry.List())
	return nil
}

// Status pings all registered providers concurrently and prints one
// health line per provider. It returns an error if any ping failed.
func (a *App) Status(ctx context.Context) error {
	infos := a.registry.List()
	results := make([]error, len(infos))

	g, gctx := errgroup.WithContext(ctx)
	for i, info := range infos {
		p, err := a.registry.Get(info.Name)
		if err != nil {
			results[i] = err
			continue
		}
		i, p := i, p
		g.Go(func() error {
			results[i] = p.Ping(gctx)
			return nil
		})
	}
	g.Wait()

	render.Header(a.out, "Provider Status")
	failed := 0
	for i, info := range infos {
		state := "ok"
		if results[i] != nil {
			state = "unreachable: " + results[i].Error()
			failed++
		}
		fmt.Fprintf(a.out, "%-14s %s\n", info.Name, state)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d providers unreachable", failed, len(infos))
	}
	return nil
}

// --- Internal helpers ---

func (a *App) fetchTicker(ctx context.Context, coinID string) (*models.Ticker, error) {
	res, err := a.registry.Fetch(ctx, provider.ModelCoinTicker, provider.QueryParams{
		provider.ParamCoinID: coinID,
	})
	if err != nil {
		return nil, err
	}
	ticker, ok := res.Data.(*models.Ticker)
	if !ok {
		return nil, fmt.Errorf("unexpected ticker data type %T", res.Data)
	}
	return ticker, nil
}

// priceOf resolves one coin's price in the target currency, failing with
// *QuoteNotFoundError when the currency is absent.
func (a *App) priceOf(ctx context.Context, coinID, currency string) (float64, error) {
	ticker, err := a.fetchTicker(ctx, coinID)
	if err != nil {
		return 0, err
	}
	q, ok := ticker.Quote(currency)
	if !ok {
		return 0, &QuoteNotFoundError{CoinID: coinID, Currency: strings.ToUpper(currency)}
	}
	return q.Price, nil
}
