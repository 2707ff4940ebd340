// Package models defines the standard data records shared by all
// providers and commands.
package models

import "strings"

// CoinSummary is the minimal identifying record for a cryptocurrency,
// one per entry in a coin list response.
type CoinSummary struct {
	ID     string `json:"id"`     // e.g., "btc-bitcoin"
	Name   string `json:"name"`   // e.g., "Bitcoin"
	Symbol string `json:"symbol"` // e.g., "BTC"
	Rank   int    `json:"rank"`
}

// CoinDetail extends the summary with the coin's description.
type CoinDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Rank        int    `json:"rank"`
}

// Quote is a single price denominated in one target currency.
type Quote struct {
	Price float64 `json:"price"`
}

// Ticker is the market-data record for one coin. Quotes maps uppercase
// currency codes (e.g., "USD") to price quotes.
type Ticker struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Symbol string           `json:"symbol"`
	Rank   int              `json:"rank"`
	Quotes map[string]Quote `json:"quotes"`
}

// Quote looks up the quote for a currency code. The code is uppercased
// before the lookup, so "usd" and "USD" are equivalent. A missing
// currency is a normal outcome, reported through the bool.
func (t *Ticker) Quote(currency string) (Quote, bool) {
	q, ok := t.Quotes[strings.ToUpper(currency)]
	return q, ok
}
