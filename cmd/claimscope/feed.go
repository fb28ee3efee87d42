// cmd/claimscope/feed.go
package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// searchNewsFeed queries the Google News RSS search feed. Last network
// strategy in the cascade; can be turned off with ENABLE_FEED_FALLBACK=false.
func (s *Scraper) searchNewsFeed(query string, limit int) []SearchResult {
	if !s.cfg.EnableFeedFallback {
		return nil
	}

	fp := gofeed.NewParser()
	fp.Client = s.client
	fp.UserAgent = s.cfg.UserAgent

	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", s.cfg.NewsFeedURL, url.QueryEscape(query))
	feed, err := fp.ParseURL(feedURL)
	if err != nil {
		RecordError("news-feed", NewError(ErrorTypeSearch, ErrSearchTransport, "feed fetch failed", err))
		return nil
	}

	var results []SearchResult
	for _, item := range feed.Items {
		if len(results) >= limit {
			break
		}
		if item.Title == "" || item.Link == "" {
			continue
		}

		// Feed descriptions carry markup
		snippet := strings.TrimSpace(stripHTMLTags(item.Description))
		if snippet == "" {
			snippet = fmt.Sprintf("News coverage of %s", query)
		}

		results = append(results, SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: snippet,
		})
	}
	return results
}

// stripHTMLTags reduces an HTML fragment to its text content
func stripHTMLTags(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}
