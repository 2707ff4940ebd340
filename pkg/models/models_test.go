package models

import (
	"encoding/json"
	"testing"
)

func TestTickerQuoteCaseInsensitive(t *testing.T) {
	ticker := &Ticker{
		ID:     "btc-bitcoin",
		Name:   "Bitcoin",
		Symbol: "BTC",
		Rank:   1,
		Quotes: map[string]Quote{
			"USD": {Price: 50000.0},
			"ETH": {Price: 16.5},
		},
	}

	tests := []struct {
		currency string
		want     float64
		found    bool
	}{
		{"USD", 50000.0, true},
		{"usd", 50000.0, true},
		{"Usd", 50000.0, true},
		{"eth", 16.5, true},
		{"inr", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		q, ok := ticker.Quote(tt.currency)
		if ok != tt.found {
			t.Errorf("Quote(%q): found = %v, want %v", tt.currency, ok, tt.found)
			continue
		}
		if ok && q.Price != tt.want {
			t.Errorf("Quote(%q): price = %v, want %v", tt.currency, q.Price, tt.want)
		}
	}
}

func TestTickerQuoteEmptyMap(t *testing.T) {
	ticker := &Ticker{ID: "new-coin"}
	if _, ok := ticker.Quote("USD"); ok {
		t.Error("expected no quote from a ticker without quotes")
	}
}

func TestCoinSummaryJSONRoundtrip(t *testing.T) {
	s := CoinSummary{ID: "eth-ethereum", Name: "Ethereum", Symbol: "ETH", Rank: 2}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal(CoinSummary) error: %v", err)
	}
	var decoded CoinSummary
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal(CoinSummary) error: %v", err)
	}
	if decoded != s {
		t.Errorf("got %+v, want %+v", decoded, s)
	}
}
