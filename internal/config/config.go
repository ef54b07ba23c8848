package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyLLMProvider    = "llm.provider"
	KeyLLMModel       = "llm.model"
	KeyLLMAPIKey      = "llm.api_key"
	KeyLLMBaseURL     = "llm.base_url"
	KeyLLMTemperature = "llm.temperature"
	KeyLLMMaxTokens   = "llm.max_tokens"
	KeyLLMRateLimit   = "llm.rate_limit"
	KeyLLMTimeout     = "llm.timeout"

	KeySearchURL            = "search.url"
	KeySearchPageSize       = "search.page_size"
	KeySearchAILimit        = "search.ai_limit"
	KeySearchFallbackDate   = "search.fallback_date"
	KeySearchAvailableDates = "search.available_dates"
	KeySearchCacheTTL       = "search.cache_ttl"
	KeySearchCacheSize      = "search.cache_size"
	KeySearchMaxRetries     = "search.max_retries"
	KeySearchRetryDelay     = "search.retry_delay"
	KeySearchTimeout        = "search.timeout"

	KeyDatabasePath = "database.path"

	KeyLoggingLevel  = "logging.level"
	KeyLoggingFormat = "logging.format"
)

// EnvPrefix is prepended to environment overrides, e.g. FLIGHTDECK_LLM_PROVIDER.
const EnvPrefix = "FLIGHTDECK"

// Config is the typed application configuration.
type Config struct {
	LLM      LLMConfig
	Search   SearchConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// LLMConfig configures the query extractor.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	RateLimit   int
	Timeout     time.Duration
}

// SearchConfig configures the flight backend and filter defaults.
type SearchConfig struct {
	URL            string
	FallbackDate   string
	AvailableDates []string
	PageSize       int
	AILimit        int
	CacheTTL       time.Duration
	CacheSize      int
	MaxRetries     int
	RetryDelay     time.Duration
	Timeout        time.Duration
}

// DatabaseConfig locates the query history database.
type DatabaseConfig struct {
	Path string
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLLMProvider, "gemini")
	v.SetDefault(KeyLLMTemperature, 0.1)
	v.SetDefault(KeyLLMMaxTokens, 256)
	v.SetDefault(KeyLLMRateLimit, 60)
	v.SetDefault(KeyLLMTimeout, 30*time.Second)

	v.SetDefault(KeySearchURL, "https://n8n-dev.qrewhub.com/webhook/flight-data-test")
	v.SetDefault(KeySearchPageSize, model.DefaultPageSize)
	v.SetDefault(KeySearchAILimit, model.DefaultAILimit)
	v.SetDefault(KeySearchFallbackDate, model.DefaultServiceDate)
	v.SetDefault(KeySearchAvailableDates, model.AvailableDates)
	v.SetDefault(KeySearchCacheTTL, 5*time.Minute)
	v.SetDefault(KeySearchCacheSize, 128)
	v.SetDefault(KeySearchMaxRetries, 3)
	v.SetDefault(KeySearchRetryDelay, 500*time.Millisecond)
	v.SetDefault(KeySearchTimeout, 30*time.Second)

	v.SetDefault(KeyDatabasePath, "~/.local/share/flightdeck/flightdeck.db")

	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFormat, "console")
}

// Load reads and validates the configuration from v. Defaults must already be set.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString(KeyLLMProvider)),
			Model:       v.GetString(KeyLLMModel),
			APIKey:      v.GetString(KeyLLMAPIKey),
			BaseURL:     v.GetString(KeyLLMBaseURL),
			Temperature: v.GetFloat64(KeyLLMTemperature),
			MaxTokens:   v.GetInt(KeyLLMMaxTokens),
			RateLimit:   v.GetInt(KeyLLMRateLimit),
			Timeout:     v.GetDuration(KeyLLMTimeout),
		},
		Search: SearchConfig{
			URL:            v.GetString(KeySearchURL),
			FallbackDate:   v.GetString(KeySearchFallbackDate),
			AvailableDates: v.GetStringSlice(KeySearchAvailableDates),
			PageSize:       v.GetInt(KeySearchPageSize),
			AILimit:        v.GetInt(KeySearchAILimit),
			CacheTTL:       v.GetDuration(KeySearchCacheTTL),
			CacheSize:      v.GetInt(KeySearchCacheSize),
			MaxRetries:     v.GetInt(KeySearchMaxRetries),
			RetryDelay:     v.GetDuration(KeySearchRetryDelay),
			Timeout:        v.GetDuration(KeySearchTimeout),
		},
		Database: DatabaseConfig{
			Path: ExpandPath(v.GetString(KeyDatabasePath)),
		},
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLoggingLevel),
			Format: v.GetString(KeyLoggingFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c Config) Validate() error {
	if c.Search.URL == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeySearchURL)
	}
	if c.Search.PageSize <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeySearchPageSize)
	}
	if c.Search.AILimit <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeySearchAILimit)
	}
	if c.Search.FallbackDate == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeySearchFallbackDate)
	}
	if _, err := time.Parse("2006-01-02", c.Search.FallbackDate); err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeySearchFallbackDate, err)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyDatabasePath)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
