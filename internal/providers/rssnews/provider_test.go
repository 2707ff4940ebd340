package rssnews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seenimoa/coinwatch/internal/provider"
	"github.com/seenimoa/coinwatch/pkg/models"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>%s</title>
<item>
  <title>Bitcoin tops the charts</title>
  <link>https://example.com/btc</link>
  <description>&lt;p&gt;Bitcoin &lt;b&gt;rallies&lt;/b&gt; again.&lt;/p&gt;</description>
  <pubDate>Mon, 24 Aug 2026 10:00:00 GMT</pubDate>
</item>
<item>
  <title>Ethereum upgrade ships</title>
  <link>https://example.com/eth</link>
  <description>Fusaka went live.</description>
  <pubDate>Tue, 25 Aug 2026 09:00:00 GMT</pubDate>
</item>
</channel></rss>`

func newFeedServer(t *testing.T, name string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, name)
	}))
}

func TestMarketNewsFetch(t *testing.T) {
	srv := newFeedServer(t, "Test Feed")
	defer srv.Close()

	p := New(WithSources([]Source{{Name: "Test Feed", URL: srv.URL}}))
	res, err := p.Fetcher(provider.ModelMarketNews).Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	articles, ok := res.Data.([]models.NewsArticle)
	if !ok {
		t.Fatalf("data type = %T", res.Data)
	}
	if len(articles) != 2 {
		t.Fatalf("len = %d, want 2", len(articles))
	}

	// Newest first.
	if articles[0].Title != "Ethereum upgrade ships" {
		t.Errorf("first article = %q", articles[0].Title)
	}
	if articles[0].Source != "Test Feed" {
		t.Errorf("source = %q", articles[0].Source)
	}

	// HTML stripped from the summary.
	if got := articles[1].Summary; got != "Bitcoin rallies again." {
		t.Errorf("summary = %q", got)
	}
}

func TestMarketNewsLimit(t *testing.T) {
	srv := newFeedServer(t, "Test Feed")
	defer srv.Close()

	p := New(WithSources([]Source{{Name: "Test Feed", URL: srv.URL}}))
	res, err := p.Fetcher(provider.ModelMarketNews).Fetch(context.Background(), provider.QueryParams{
		provider.ParamLimit: "1",
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	articles := res.Data.([]models.NewsArticle)
	if len(articles) != 1 {
		t.Errorf("len = %d, want 1", len(articles))
	}
}

func TestMarketNewsInvalidLimit(t *testing.T) {
	p := New(WithSources(nil))
	_, err := p.Fetcher(provider.ModelMarketNews).Fetch(context.Background(), provider.QueryParams{
		provider.ParamLimit: "lots",
	})
	if err == nil {
		t.Error("expected error for non-numeric limit")
	}
}

func TestMarketNewsSkipsDeadFeeds(t *testing.T) {
	good := newFeedServer(t, "Good")
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer bad.Close()

	p := New(WithSources([]Source{
		{Name: "Bad", URL: bad.URL},
		{Name: "Good", URL: good.URL},
	}))
	res, err := p.Fetcher(provider.ModelMarketNews).Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	articles := res.Data.([]models.NewsArticle)
	if len(articles) != 2 {
		t.Errorf("len = %d, want 2 from the healthy feed", len(articles))
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>hello <b>world</b></p>", "hello world"},
		{"  <div>trimmed</div>  ", "trimmed"},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.in); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
