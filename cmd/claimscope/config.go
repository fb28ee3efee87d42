// cmd/claimscope/config.go
package main

// Config holds application configuration, loaded once at startup from the
// environment and passed explicitly into constructors. Never mutated after
// validation.
type Config struct {
	// LLM backend
	OpenAIAPIKey  string
	OpenAIBaseURL string // optional; supports OpenRouter-style proxies
	ModelName     string
	MaxTokens     int
	Temperature   float64

	// Google Custom Search (optional; absence skips the structured step)
	GoogleAPIKey string
	GoogleCSEID  string

	// Evidence gathering
	MaxSearchResults   int
	SearchTimeoutSec   int
	EnableFeedFallback bool
	UserAgent          string
	ProvidersPath      string

	// Provider endpoints, overridable so tests can point them at fakes
	GoogleSearchURL string
	DuckDuckGoURL   string
	CustomSearchURL string
	NewsFeedURL     string

	// Result cache
	CacheTTLMinutes int
	CacheMaxEntries int

	// Dashboard
	DashboardPort int

	// Discord bot (optional; absence disables the bot surface)
	BotToken string
	GuildID  string

	// Logging
	LogPath  string
	LogLevel string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OpenAIAPIKey:  GetEnvString("OPENAI_API_KEY", ""),
		OpenAIBaseURL: GetEnvString("OPENAI_BASE_URL", ""),
		ModelName:     GetEnvString("MODEL_NAME", DefaultModelName),
		MaxTokens:     GetEnvInt("MAX_TOKENS", DefaultMaxTokens),
		Temperature:   GetEnvFloat("TEMPERATURE", DefaultTemperature),

		GoogleAPIKey: GetEnvString("GOOGLE_API_KEY", ""),
		GoogleCSEID:  GetEnvString("GOOGLE_CSE_ID", ""),

		MaxSearchResults:   GetEnvInt("MAX_SEARCH_RESULTS", DefaultMaxSearchResults),
		SearchTimeoutSec:   GetEnvInt("SEARCH_TIMEOUT", DefaultSearchTimeoutSec),
		EnableFeedFallback: GetEnvBool("ENABLE_FEED_FALLBACK", true),
		UserAgent:          GetEnvString("USER_AGENT", DefaultUserAgent),
		ProvidersPath:      GetEnvString("PROVIDERS_PATH", "config/providers.yml"),

		GoogleSearchURL: GetEnvString("GOOGLE_SEARCH_URL", DefaultGoogleSearchURL),
		DuckDuckGoURL:   GetEnvString("DUCKDUCKGO_URL", DefaultDuckDuckGoURL),
		CustomSearchURL: GetEnvString("CUSTOM_SEARCH_URL", DefaultCustomSearchURL),
		NewsFeedURL:     GetEnvString("NEWS_FEED_URL", DefaultNewsFeedURL),

		CacheTTLMinutes: GetEnvInt("CACHE_TTL_MINUTES", DefaultCacheTTLMinutes),
		CacheMaxEntries: GetEnvInt("CACHE_MAX_ENTRIES", DefaultCacheMaxEntries),

		DashboardPort: GetEnvInt("DASHBOARD_PORT", DefaultDashboardPort),

		BotToken: GetEnvString("BOT_TOKEN", ""),
		GuildID:  GetEnvString("GUILD_ID", ""),

		LogPath:  GetEnvString("LOG_PATH", "data/logs/claimscope.log"),
		LogLevel: GetEnvString("LOG_LEVEL", "INFO"),
	}
}

// Validate checks the configuration before any pipeline step runs. A missing
// model credential makes the whole pipeline unusable, so it fails here rather
// than on the first request.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return NewConfigError(ErrConfigMissingKey, "OPENAI_API_KEY is required", nil)
	}
	if c.MaxSearchResults <= 0 {
		return NewConfigError(ErrConfigValidation, "MAX_SEARCH_RESULTS must be positive", nil)
	}
	if c.SearchTimeoutSec <= 0 {
		return NewConfigError(ErrConfigValidation, "SEARCH_TIMEOUT must be positive", nil)
	}
	return nil
}
