// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/flightdeck/internal/model"
)

// QueryParser turns a natural-language query into search filters.
type QueryParser interface {
	Parse(ctx context.Context, query string) (model.Filters, error)
}

// FlightSearcher fetches one page of flights for a set of filters.
type FlightSearcher interface {
	Search(ctx context.Context, filters model.Filters) (model.FlightPage, error)
}

// HistoryStorage defines the contract for the query history log.
type HistoryStorage interface {
	SaveQuery(ctx context.Context, record *model.QueryRecord) error
	RecentQueries(ctx context.Context, limit int) ([]model.QueryRecord, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
