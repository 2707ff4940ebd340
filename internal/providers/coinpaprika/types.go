package coinpaprika

import (
	"fmt"

	"github.com/seenimoa/coinwatch/internal/provider"
	"github.com/seenimoa/coinwatch/pkg/models"
)

// --- coinpaprika API wire types ---
//
// Required fields are pointers so that a field the server omitted can be
// told apart from a zero value. mapX converts a wire record into the
// standard model, failing on any missing required field so that no
// partial record ever reaches a caller.

// cpCoin is one entry of the GET /coins response.
type cpCoin struct {
	ID     *string `json:"id"`
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
	Rank   *int    `json:"rank"`
}

// cpCoinDetail is the GET /coins/{id} response.
type cpCoinDetail struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Symbol      *string `json:"symbol"`
	Description *string `json:"description"`
	Rank        *int    `json:"rank"`
}

// cpTicker is the GET /tickers/{id} response.
type cpTicker struct {
	ID     *string            `json:"id"`
	Name   *string            `json:"name"`
	Symbol *string            `json:"symbol"`
	Rank   *int               `json:"rank"`
	Quotes map[string]cpQuote `json:"quotes"`
}

// cpQuote is one entry of a ticker's quotes map.
type cpQuote struct {
	Price *float64 `json:"price"`
}

func missingField(model provider.ModelType, name string) error {
	return &provider.DecodeError{
		Model:  model,
		Reason: fmt.Sprintf("missing required field %q", name),
	}
}

func mapCoin(c cpCoin) (models.CoinSummary, error) {
	switch {
	case c.ID == nil:
		return models.CoinSummary{}, missingField(provider.ModelCoinList, "id")
	case c.Name == nil:
		return models.CoinSummary{}, missingField(provider.ModelCoinList, "name")
	case c.Symbol == nil:
		return models.CoinSummary{}, missingField(provider.ModelCoinList, "symbol")
	case c.Rank == nil:
		return models.CoinSummary{}, missingField(provider.ModelCoinList, "rank")
	}
	return models.CoinSummary{
		ID:     *c.ID,
		Name:   *c.Name,
		Symbol: *c.Symbol,
		Rank:   *c.Rank,
	}, nil
}

func mapCoinDetail(d cpCoinDetail) (*models.CoinDetail, error) {
	switch {
	case d.ID == nil:
		return nil, missingField(provider.ModelCoinDetail, "id")
	case d.Name == nil:
		return nil, missingField(provider.ModelCoinDetail, "name")
	case d.Symbol == nil:
		return nil, missingField(provider.ModelCoinDetail, "symbol")
	case d.Description == nil:
		return nil, missingField(provider.ModelCoinDetail, "description")
	case d.Rank == nil:
		return nil, missingField(provider.ModelCoinDetail, "rank")
	}
	return &models.CoinDetail{
		ID:          *d.ID,
		Name:        *d.Name,
		Symbol:      *d.Symbol,
		Description: *d.Description,
		Rank:        *d.Rank,
	}, nil
}

func mapTicker(tk cpTicker) (*models.Ticker, error) {
	switch {
	case tk.ID == nil:
		return nil, missingField(provider.ModelCoinTicker, "id")
	case tk.Name == nil:
		return nil, missingField(provider.ModelCoinTicker, "name")
	case tk.Symbol == nil:
		return nil, missingField(provider.ModelCoinTicker, "symbol")
	case tk.Rank == nil:
		return nil, missingField(provider.ModelCoinTicker, "rank")
	case tk.Quotes == nil:
		return nil, missingField(provider.ModelCoinTicker, "quotes")
	}

	quotes := make(map[string]models.Quote, len(tk.Quotes))
	for code, q := range tk.Quotes {
		if q.Price == nil {
			return nil, missingField(provider.ModelCoinTicker, "quotes."+code+".price")
		}
		quotes[code] = models.Quote{Price: *q.Price}
	}

	return &models.Ticker{
		ID:     *tk.ID,
		Name:   *tk.Name,
		Symbol: *tk.Symbol,
		Rank:   *tk.Rank,
		Quotes: quotes,
	}, nil
}
