package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/config"
	"github.com/Veraticus/flightdeck/internal/flights"
	"github.com/Veraticus/flightdeck/internal/llm"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/query"
	"github.com/Veraticus/flightdeck/internal/storage"
	"github.com/spf13/viper"
)

// loadConfig reads the typed configuration from the global viper instance.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// apiKeyEnv names the conventional environment variable of each provider,
// consulted when llm.api_key is unset.
var apiKeyEnv = map[string]string{
	"openai": "OPENAI_API_KEY",
	"gemini": "GEMINI_API_KEY",
}

// newQueryParser creates the natural-language query parser.
func newQueryParser(cfg config.Config) (*query.Parser, error) {
	apiKey := cfg.LLM.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv[cfg.LLM.Provider])
	}

	client, err := llm.NewClient(llm.Config{
		Provider:    cfg.LLM.Provider,
		APIKey:      apiKey,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		RateLimit:   cfg.LLM.RateLimit,
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return query.NewParser(client, slog.Default(), query.Options{
		FallbackDate:   cfg.Search.FallbackDate,
		AvailableDates: cfg.Search.AvailableDates,
		Limit:          cfg.Search.AILimit,
	}), nil
}

// newSearchClient creates the flight backend client.
func newSearchClient(cfg config.Config) (*flights.Client, error) {
	client, err := flights.NewClient(flights.Config{
		URL:        cfg.Search.URL,
		Timeout:    cfg.Search.Timeout,
		RetryDelay: cfg.Search.RetryDelay,
		CacheTTL:   cfg.Search.CacheTTL,
		MaxRetries: cfg.Search.MaxRetries,
		CacheSize:  cfg.Search.CacheSize,
	}, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}
	return client, nil
}

// openStorage opens the history database and brings its schema up to date.
func openStorage(ctx context.Context, cfg config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// saveHistory records a query. History is best effort: failures are logged
// and never fail the command.
func saveHistory(ctx context.Context, cfg config.Config, text string, filters *model.Filters, resultCount int) {
	store, err := openStorage(ctx, cfg)
	if err != nil {
		common.LogError(err, "Failed to open query history", common.Fields{"query": text})
		return
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Debug("Failed to close database", "error", closeErr)
		}
	}()

	record := &model.QueryRecord{
		Query:       text,
		Filters:     filters,
		ResultCount: resultCount,
	}
	if err := store.SaveQuery(ctx, record); err != nil {
		common.LogError(err, "Failed to save query history", common.Fields{"query": text})
		return
	}
	common.LogDebug("Saved query history", common.Fields{"id": record.ID, "query": text})
}
