package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a config whose provider endpoints all point at a dead
// server, so individual tests only stand up the sources they care about.
func newTestConfig(t *testing.T) *Config {
	t.Helper()
	dead := deadServerURL(t)

	return &Config{
		OpenAIAPIKey:     "test-key",
		OpenAIBaseURL:    dead + "/v1",
		ModelName:        "test-model",
		MaxTokens:        DefaultMaxTokens,
		Temperature:      DefaultTemperature,
		MaxSearchResults: DefaultMaxSearchResults,
		SearchTimeoutSec: 2,
		UserAgent:        DefaultUserAgent,
		GoogleSearchURL:  dead,
		DuckDuckGoURL:    dead,
		CustomSearchURL:  dead,
		NewsFeedURL:      dead,
		CacheTTLMinutes:  1,
		CacheMaxEntries:  10,
	}
}

// deadServerURL returns a URL nothing is listening on
func deadServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	return srv.URL
}

func newTestScraper(cfg *Config) *Scraper {
	return NewScraper(cfg, DefaultProviderRules())
}

func TestSearchFallbackWhenAllSourcesFail(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.EnableFeedFallback = true // every network strategy is tried and fails
	s := newTestScraper(cfg)

	query := "Scientists discover new planet made entirely of diamonds"
	results := s.Search(query, 5)

	require.Len(t, results, 3)
	assert.Equal(t, fmt.Sprintf("Search result 1 for: %s", query), results[0].Title)
	assert.Equal(t, fmt.Sprintf("Fact-check article about: %s", query), results[1].Title)
	assert.Equal(t, fmt.Sprintf("News article related to: %s", query), results[2].Title)
	for _, r := range results {
		assert.Contains(t, r.Snippet, query)
		assert.Contains(t, r.Link, "https://example.com/")
	}
}

func TestSearchCustomAPITakesPriority(t *testing.T) {
	cfg := newTestConfig(t)

	cseHits := 0
	cse := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cseHits++
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-cse-id", r.URL.Query().Get("cx"))
		assert.Equal(t, "is the moon shrinking", r.URL.Query().Get("q"))
		assert.Equal(t, "3", r.URL.Query().Get("num"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]string{
				{"title": "NASA on lunar shrinkage", "link": "https://nasa.example/moon", "snippet": "The moon is slowly shrinking."},
				{"title": "Moonquakes explained", "link": "https://science.example/quakes", "snippet": "Shrinkage causes moonquakes."},
			},
		})
	}))
	defer cse.Close()

	scrapeHits := 0
	scrape := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scrapeHits++
		fmt.Fprint(w, `<div class="g"><h3>Should not be used</h3><a href="https://x.example">x</a></div>`)
	}))
	defer scrape.Close()

	cfg.GoogleAPIKey = "test-api-key"
	cfg.GoogleCSEID = "test-cse-id"
	cfg.CustomSearchURL = cse.URL
	cfg.GoogleSearchURL = scrape.URL
	cfg.DuckDuckGoURL = scrape.URL

	s := newTestScraper(cfg)
	results := s.Search("is the moon shrinking", 3)

	// The winning source's results come back unmodified, in order, and no
	// later fallback is consulted.
	require.Len(t, results, 2)
	assert.Equal(t, SearchResult{
		Title:   "NASA on lunar shrinkage",
		Link:    "https://nasa.example/moon",
		Snippet: "The moon is slowly shrinking.",
	}, results[0])
	assert.Equal(t, "Moonquakes explained", results[1].Title)
	assert.Equal(t, 1, cseHits)
	assert.Equal(t, 0, scrapeHits)
}

func TestSearchCustomAPISkippedWithoutCredentials(t *testing.T) {
	cfg := newTestConfig(t)

	cseHits := 0
	cse := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cseHits++
	}))
	defer cse.Close()
	cfg.CustomSearchURL = cse.URL

	s := newTestScraper(cfg)
	results := s.Search("claim with no configured api key", 5)

	assert.Equal(t, 0, cseHits)
	// Everything else is dead, so the synthetic fallback fires
	require.Len(t, results, 3)
}

const googlePage = `<html><body>
<div class="g"><h3>First result</h3><a href="https://example.org/a">link</a><div class="VwiC3b">Snippet A</div></div>
<div class="g"><h3>Title without link</h3></div>
<div class="g"><h3>Relative link skipped</h3><a href="/relative">link</a></div>
<div class="tF2Cxc"><h3>Second result</h3><a href="https://example.org/b">link</a></div>
<div class="g"><h3>Third result</h3><a href="https://example.org/c">link</a><span class="aCOpRe">Snippet C</span></div>
</body></html>`

func TestSearchGoogleScrape(t *testing.T) {
	cfg := newTestConfig(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "test query", r.URL.Query().Get("q"))
		fmt.Fprint(w, googlePage)
	}))
	defer srv.Close()
	cfg.GoogleSearchURL = srv.URL

	s := newTestScraper(cfg)
	results := s.Search("test query", 5)

	require.Len(t, results, 3)
	assert.Equal(t, "First result", results[0].Title)
	assert.Equal(t, "https://example.org/a", results[0].Link)
	assert.Equal(t, "Snippet A", results[0].Snippet)

	// Block with no snippet selector match gets the placeholder
	assert.Equal(t, "Second result", results[1].Title)
	assert.Equal(t, "Information related to test query", results[1].Snippet)

	assert.Equal(t, "Snippet C", results[2].Snippet)
}

func TestSearchGoogleScrapeHonorsLimit(t *testing.T) {
	cfg := newTestConfig(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, googlePage)
	}))
	defer srv.Close()
	cfg.GoogleSearchURL = srv.URL

	s := newTestScraper(cfg)
	results := s.Search("test query", 2)

	require.Len(t, results, 2)
	assert.Equal(t, "First result", results[0].Title)
	assert.Equal(t, "Second result", results[1].Title)
}

func TestSearchGoogleScrapeNon200IsEmpty(t *testing.T) {
	cfg := newTestConfig(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, googlePage)
	}))
	defer srv.Close()
	cfg.GoogleSearchURL = srv.URL

	s := newTestScraper(cfg)
	results := s.Search("test query", 5)

	// Non-success status cascades straight to the synthetic fallback
	require.Len(t, results, 3)
	assert.Contains(t, results[0].Title, "Search result 1 for:")
}

const duckduckgoPage = `<html><body>
<div class="result">
  <a class="result__a" href="https://duck.example/1">DDG One</a>
  <a class="result__snippet" href="https://duck.example/1">Snippet one</a>
</div>
<div class="result">
  <a class="result__a" href="https://duck.example/2">DDG Two</a>
</div>
</body></html>`

func TestSearchDuckDuckGoScrape(t *testing.T) {
	cfg := newTestConfig(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "another query", r.PostFormValue("q"))
		fmt.Fprint(w, duckduckgoPage)
	}))
	defer srv.Close()
	cfg.DuckDuckGoURL = srv.URL

	s := newTestScraper(cfg)
	results := s.Search("another query", 5)

	require.Len(t, results, 2)
	assert.Equal(t, SearchResult{
		Title:   "DDG One",
		Link:    "https://duck.example/1",
		Snippet: "Snippet one",
	}, results[0])
	assert.Equal(t, "DDG Two", results[1].Title)
	assert.Equal(t, "Information about another query", results[1].Snippet)
}

const newsFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Search results</title>
<item><title>Feed Item</title><link>https://news.example/1</link><description><![CDATA[<b>Bold</b> description]]></description></item>
<item><title></title><link>https://news.example/skipped</link></item>
<item><title>Second Item</title><link>https://news.example/2</link></item>
</channel></rss>`

func TestSearchNewsFeedFallback(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.EnableFeedFallback = true

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "feed query", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, newsFeedXML)
	}))
	defer srv.Close()
	cfg.NewsFeedURL = srv.URL

	s := newTestScraper(cfg)
	results := s.Search("feed query", 5)

	require.Len(t, results, 2)
	assert.Equal(t, "Feed Item", results[0].Title)
	assert.Equal(t, "Bold description", results[0].Snippet)
	assert.Equal(t, "Second Item", results[1].Title)
	assert.Equal(t, "News coverage of feed query", results[1].Snippet)
}

func TestSearchNewsFeedDisabled(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.EnableFeedFallback = false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("feed endpoint should not be called when disabled")
	}))
	defer srv.Close()
	cfg.NewsFeedURL = srv.URL

	s := newTestScraper(cfg)
	results := s.Search("feed query", 5)

	require.Len(t, results, 3) // synthetic fallback
}
