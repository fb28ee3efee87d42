// cmd/claimscope/constants.go
package main

import "time"

// Application constants
const (
	AppName    = "ClaimScope"
	AppVersion = "1.0.0"
	AppAuthor  = "NullMeDev"
	AppRepo    = "https://github.com/NullMeDev/claimscope"
)

// Input validation
const (
	MinClaimLength = 10
)

// Evidence gathering defaults
const (
	DefaultGoogleSearchURL = "https://www.google.com/search"
	DefaultDuckDuckGoURL   = "https://html.duckduckgo.com/html/"
	DefaultCustomSearchURL = "https://www.googleapis.com/customsearch/v1"
	DefaultNewsFeedURL     = "https://news.google.com/rss/search"

	DefaultMaxSearchResults = 5
	DefaultSearchTimeoutSec = 10

	// Scraped search engines serve a degraded page to unknown clients
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Analysis defaults
const (
	DefaultModelName   = "gpt-5-nano"
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.3

	AnalysisTimeout = 30 * time.Second
)

// Verdicts the model is asked to choose from. The set is open: a verdict
// coined by the model is kept as-is.
const (
	VerdictLikelyTrue     = "Likely True"
	VerdictLikelyFalse    = "Likely False"
	VerdictUncertain      = "Uncertain"
	VerdictMixedEvidence  = "Mixed Evidence"
	VerdictAnalysisFailed = "Analysis Failed"
)

// Confidence levels
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Cache settings
const (
	DefaultCacheTTLMinutes = 60
	DefaultCacheMaxEntries = 500
)

// Dashboard settings
const (
	DefaultDashboardPort = 8080
)
