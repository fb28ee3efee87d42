// cmd/claimscope/checker.go
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Checker ties evidence gathering and analysis together behind a single
// entry point shared by the dashboard and the Discord bot. Callers are
// expected to run ValidateClaim first; Check itself never fails.
type Checker struct {
	cfg      *Config
	scraper  *Scraper
	analyzer *Analyzer
	cache    *ResultCache
	hub      *wsHub
}

// NewChecker wires the pipeline from explicit configuration
func NewChecker(cfg *Config) *Checker {
	rules := LoadProviderRules(cfg.ProvidersPath)
	return &Checker{
		cfg:      cfg,
		scraper:  NewScraper(cfg, rules),
		analyzer: NewAnalyzer(cfg),
		cache:    NewResultCache(time.Duration(cfg.CacheTTLMinutes)*time.Minute, cfg.CacheMaxEntries),
		hub:      newWSHub(),
	}
}

// Check runs the full pipeline for one claim: cache lookup, evidence cascade,
// model analysis. Degraded analyses are returned but not cached, so a
// transient model outage does not poison repeat lookups.
func (c *Checker) Check(ctx context.Context, claim string) *CheckResult {
	if cached, ok := c.cache.Get(claim); ok {
		countCheck(true, false)
		hit := *cached
		hit.Cached = true
		return &hit
	}

	c.hub.Broadcast("searching", claim)
	sources := c.scraper.Search(claim, c.cfg.MaxSearchResults)

	c.hub.Broadcast("analyzing", claim)
	analysis := c.analyzer.AnalyzeClaim(ctx, claim, sources)

	result := &CheckResult{
		ID:        uuid.NewString(),
		Claim:     claim,
		Sources:   sources,
		Analysis:  analysis,
		CheckedAt: time.Now(),
	}

	if result.Degraded() {
		countCheck(false, true)
		c.hub.Broadcast("failed", claim)
		return result
	}

	c.cache.Set(claim, result)
	countCheck(false, false)
	c.hub.Broadcast("done", claim)
	return result
}
