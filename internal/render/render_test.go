package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seenimoa/coinwatch/pkg/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50000.0, "50000"},
		{3000.5, "3000.5"},
		{0.00001234, "0.00001234"},
		{12000000000, "12000000000"}, // no exponent notation
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCoinListOneLinePerEntry(t *testing.T) {
	coins := []models.CoinSummary{
		{ID: "btc-bitcoin", Name: "Bitcoin", Symbol: "BTC", Rank: 1},
		{ID: "eth-ethereum", Name: "Ethereum", Symbol: "ETH", Rank: 2},
		{ID: "usdt-tether", Name: "Tether", Symbol: "USDT", Rank: 3},
	}

	var buf bytes.Buffer
	CoinList(&buf, coins)
	out := buf.String()

	var entryLines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "- Rank:") {
			entryLines = append(entryLines, line)
		}
	}
	if len(entryLines) != len(coins) {
		t.Fatalf("got %d entry lines, want %d", len(entryLines), len(coins))
	}

	// Order preserved.
	if !strings.Contains(entryLines[0], "Bitcoin") ||
		!strings.Contains(entryLines[1], "Ethereum") ||
		!strings.Contains(entryLines[2], "Tether") {
		t.Errorf("entries out of order:\n%s", out)
	}
	if entryLines[0] != "Bitcoin (BTC) - Rank: 1" {
		t.Errorf("line = %q", entryLines[0])
	}
}

func TestCoinDetailPrintsAllFields(t *testing.T) {
	var buf bytes.Buffer
	CoinDetail(&buf, &models.CoinDetail{
		ID:          "btc-bitcoin",
		Name:        "Bitcoin",
		Symbol:      "BTC",
		Description: "Digital gold.",
		Rank:        1,
	})
	out := buf.String()

	for _, want := range []string{"Name: Bitcoin", "Symbol: BTC", "Description: Digital gold.", "Rank: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPriceOutput(t *testing.T) {
	ticker := &models.Ticker{Name: "Bitcoin", Symbol: "BTC"}

	var buf bytes.Buffer
	Price(&buf, ticker, "USD", models.Quote{Price: 50000.0})
	if !strings.Contains(buf.String(), "1 Bitcoin (BTC) = 50000 USD") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	PriceNotFound(&buf, ticker, "INR")
	if !strings.Contains(buf.String(), "Could not find price information for Bitcoin in INR") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestComparisonOrdering(t *testing.T) {
	var buf bytes.Buffer

	Comparison(&buf, "btc-bitcoin", "eth-ethereum", "USD", 50000, 3000)
	if !strings.Contains(buf.String(), "btc-bitcoin is more valuable than eth-ethereum in USD") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	Comparison(&buf, "btc-bitcoin", "eth-ethereum", "USD", 3000, 50000)
	if !strings.Contains(buf.String(), "eth-ethereum is more valuable than btc-bitcoin in USD") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestComparisonEqualPrintsOnce(t *testing.T) {
	var buf bytes.Buffer
	Comparison(&buf, "a-coin", "b-coin", "USD", 10, 10)
	out := buf.String()

	if n := strings.Count(out, "have the same value"); n != 1 {
		t.Errorf("same-value line printed %d times, want 1:\n%s", n, out)
	}
	if strings.Contains(out, "more valuable") {
		t.Errorf("unexpected more-valuable line for equal prices:\n%s", out)
	}
}
