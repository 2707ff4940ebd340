// Package render formats records as the human-readable text blocks the
// CLI prints. All output goes through an io.Writer so commands can be
// tested against a buffer.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/seenimoa/coinwatch/internal/provider"
	"github.com/seenimoa/coinwatch/pkg/models"
)

const rule = "======================================="

// Banner prints the root-command welcome block.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "=========================================================")
	fmt.Fprintln(w, "             coinwatch - Crypto CLI Tool                 ")
	fmt.Fprintln(w, "=========================================================")
	fmt.Fprintln(w, "Fetch real-time cryptocurrency data: prices, details,")
	fmt.Fprintln(w, "coin comparisons, and market news.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available Commands:")
	fmt.Fprintln(w, "  list-coins                                    Show a list of all coins")
	fmt.Fprintln(w, "  coin-details <coin_id>                        Show details for a specific coin")
	fmt.Fprintln(w, "  coin-price <coin_id> <currency>               Get the price of a coin")
	fmt.Fprintln(w, "  compare-coins <coin1> <coin2> <currency>      Compare two coins")
	fmt.Fprintln(w, "  news                                          Show crypto market news")
	fmt.Fprintln(w, "=========================================================")
}

// Header prints a section header block.
func Header(w io.Writer, title string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// FormatPrice renders a price with the shortest exact decimal form:
// 50000.0 prints as "50000", never in exponent notation.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// CoinList prints one line per coin, in the order given.
func CoinList(w io.Writer, coins []models.CoinSummary) {
	Header(w, "Listing All Coins")
	for _, c := range coins {
		fmt.Fprintf(w, "%s (%s) - Rank: %d\n", c.Name, c.Symbol, c.Rank)
	}
}

// CoinDetail prints all fields of a coin detail record.
func CoinDetail(w io.Writer, d *models.CoinDetail) {
	Header(w, fmt.Sprintf("Coin Details for %s (%s)", d.Name, d.Symbol))
	fmt.Fprintf(w, "Name: %s\n", d.Name)
	fmt.Fprintf(w, "Symbol: %s\n", d.Symbol)
	fmt.Fprintf(w, "Description: %s\n", d.Description)
	fmt.Fprintf(w, "Rank: %d\n", d.Rank)
}

// Price prints a coin's price in the target currency. currency must
// already be uppercased.
func Price(w io.Writer, t *models.Ticker, currency string, q models.Quote) {
	Header(w, fmt.Sprintf("Price for %s (%s) in %s", t.Name, t.Symbol, currency))
	fmt.Fprintf(w, "1 %s (%s) = %s %s\n", t.Name, t.Symbol, FormatPrice(q.Price), currency)
}

// PriceNotFound prints the soft "no quote" message for a coin.
func PriceNotFound(w io.Writer, t *models.Ticker, currency string) {
	Header(w, fmt.Sprintf("Price for %s (%s) in %s", t.Name, t.Symbol, currency))
	fmt.Fprintf(w, "Could not find price information for %s in %s\n", t.Name, currency)
}

// Comparison prints both prices and which coin is more valuable.
// currency must already be uppercased.
func Comparison(w io.Writer, coin1, coin2, currency string, p1, p2 float64) {
	Header(w, fmt.Sprintf("Comparing %s and %s in %s", coin1, coin2, currency))
	fmt.Fprintf(w, "%s price: %s %s\n", coin1, FormatPrice(p1), currency)
	fmt.Fprintf(w, "%s price: %s %s\n", coin2, FormatPrice(p2), currency)

	switch {
	case p1 > p2:
		fmt.Fprintf(w, "%s is more valuable than %s in %s\n", coin1, coin2, currency)
	case p1 < p2:
		fmt.Fprintf(w, "%s is more valuable than %s in %s\n", coin2, coin1, currency)
	default:
		fmt.Fprintf(w, "Both %s and %s have the same value in %s\n", coin1, coin2, currency)
	}
}

// News prints one block per article, newest first.
func News(w io.Writer, articles []models.NewsArticle) {
	Header(w, "Crypto Market News")
	for _, a := range articles {
		ts := ""
		if !a.PublishedAt.IsZero() {
			ts = a.PublishedAt.Format("2006-01-02 15:04") + " "
		}
		fmt.Fprintf(w, "%s[%s] %s\n", ts, a.Source, a.Title)
		if a.URL != "" {
			fmt.Fprintf(w, "    %s\n", a.URL)
		}
	}
}

// Providers prints the registered providers and their model coverage.
func Providers(w io.Writer, infos []provider.Info) {
	Header(w, "Registered Data Providers")
	for _, info := range infos {
		fmt.Fprintf(w, "%s - %s\n", info.Name, info.Description)
		for _, m := range info.Models {
			fmt.Fprintf(w, "    %s\n", m)
		}
	}
}
