// cmd/claimscope/providers.go
package main

import (
	"os"

	"gopkg.in/yaml.v2"
)

// ScrapeRules describes how to pull search results out of one provider's
// markup. Selectors within each list are tried in order; the first match wins,
// which absorbs markup drift without hard-failing the whole scrape.
type ScrapeRules struct {
	Blocks          []string `yaml:"blocks"`
	Title           []string `yaml:"title"`
	Link            []string `yaml:"link"`
	Snippet         []string `yaml:"snippet"`
	RequireHTTPLink bool     `yaml:"require_http_link"`
}

// ProviderRules holds the scrape rules for each HTML search provider
type ProviderRules struct {
	Google     ScrapeRules `yaml:"google"`
	DuckDuckGo ScrapeRules `yaml:"duckduckgo"`
}

// DefaultProviderRules returns the compiled-in selector sets
func DefaultProviderRules() *ProviderRules {
	return &ProviderRules{
		Google: ScrapeRules{
			Blocks:          []string{"div.g", "div.tF2Cxc", "div.kvH3mc"},
			Title:           []string{"h3", "h3.LC20lb", "h3.r"},
			Link:            []string{"a"},
			Snippet:         []string{"div.VwiC3b", "span.aCOpRe", "div.s", "div.st"},
			RequireHTTPLink: true,
		},
		DuckDuckGo: ScrapeRules{
			Blocks:  []string{"div.result"},
			Title:   []string{"a.result__a"},
			Link:    []string{"a.result__a"},
			Snippet: []string{"a.result__snippet"},
		},
	}
}

// LoadProviderRules reads selector overrides from a YAML file. A missing file
// is fine; a malformed one is logged and the defaults kept.
func LoadProviderRules(path string) *ProviderRules {
	rules := DefaultProviderRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules
	}

	var loaded ProviderRules
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		RecordError("providers", NewError(ErrorTypeConfig, ErrConfigValidation, "invalid providers file", err))
		return rules
	}

	mergeRules(&rules.Google, loaded.Google)
	mergeRules(&rules.DuckDuckGo, loaded.DuckDuckGo)
	Logger().Info("Loaded scrape selector overrides from %s", path)
	return rules
}

// mergeRules overlays non-empty selector lists from src onto dst.
// RequireHTTPLink is intentionally not merged: it is a provider property, not
// a markup detail.
func mergeRules(dst *ScrapeRules, src ScrapeRules) {
	if len(src.Blocks) > 0 {
		dst.Blocks = src.Blocks
	}
	if len(src.Title) > 0 {
		dst.Title = src.Title
	}
	if len(src.Link) > 0 {
		dst.Link = src.Link
	}
	if len(src.Snippet) > 0 {
		dst.Snippet = src.Snippet
	}
}
