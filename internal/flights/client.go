package flights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/service"
)

// Config configures the search backend client.
type Config struct {
	URL        string
	Timeout    time.Duration
	RetryDelay time.Duration
	CacheTTL   time.Duration
	MaxRetries int
	CacheSize  int
}

// Client searches the flight backend.
type Client struct {
	httpClient *http.Client
	cache      *pageCache
	logger     *slog.Logger
	url        string
	retryOpts  service.RetryOptions
}

// NewClient creates a search client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: search URL is required", common.ErrMissingConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = 500 * time.Millisecond
	}

	return &Client{
		url:        cfg.URL,
		logger:     logger,
		cache:      newPageCache(cfg.CacheSize, cfg.CacheTTL),
		retryOpts:  retryOpts,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// searchResponse is the backend's envelope.
type searchResponse struct {
	NextPageToken *string        `json:"nextPageToken"`
	Items         []model.Flight `json:"items"`
	Count         int            `json:"count"`
	OK            bool           `json:"ok"`
}

// Search fetches one page of flights.
func (c *Client) Search(ctx context.Context, filters model.Filters) (model.FlightPage, error) {
	request := requestFilters(filters)
	if err := request.Validate(); err != nil {
		return model.FlightPage{}, fmt.Errorf("invalid filters: %w", err)
	}

	key := request.CacheKey()
	if page, ok := c.cache.get(key); ok {
		c.logger.Debug("search cache hit", "filters", request.Summary())
		return orderPage(page, filters.SortBy), nil
	}

	body, err := json.Marshal(request)
	if err != nil {
		return model.FlightPage{}, fmt.Errorf("failed to marshal filters: %w", err)
	}

	start := time.Now()
	var page model.FlightPage
	err = common.WithRetry(ctx, func() error {
		var postErr error
		page, postErr = c.post(ctx, body)
		return postErr
	}, c.retryOpts)
	if err != nil {
		c.logger.Error("flight search failed",
			"filters", request.Summary(),
			"transient", common.IsRetryable(err),
			"error", err)
		if errors.Is(err, common.ErrSearchFailed) {
			return model.FlightPage{}, err
		}
		return model.FlightPage{}, fmt.Errorf("%w: %w", common.ErrSearchFailed, err)
	}

	c.logger.Info("flight search completed",
		"filters", request.Summary(),
		"count", page.Count,
		"has_next", page.HasNext(),
		"latency_ms", time.Since(start).Milliseconds())

	c.cache.set(key, page)
	return orderPage(page, filters.SortBy), nil
}

// ClearCache drops every cached page.
func (c *Client) ClearCache() {
	c.cache.clear()
}

func (c *Client) post(ctx context.Context, body []byte) (model.FlightPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return model.FlightPage{}, &common.RetryableError{Err: fmt.Errorf("failed to create request: %w", err), Retryable: false}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return model.FlightPage{}, ctx.Err()
		}
		return model.FlightPage{}, &common.RetryableError{Err: fmt.Errorf("request failed: %w", err), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.FlightPage{}, &common.RetryableError{Err: fmt.Errorf("failed to read response: %w", err), Retryable: true}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return model.FlightPage{}, &common.RetryableError{
			Err:       fmt.Errorf("search backend error (status %d): %s", resp.StatusCode, truncate(string(respBody), 200)),
			Retryable: retryable,
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return model.FlightPage{}, &common.RetryableError{Err: fmt.Errorf("failed to parse response: %w", err), Retryable: false}
	}
	if !parsed.OK {
		return model.FlightPage{}, &common.RetryableError{Err: fmt.Errorf("%w: backend reported ok=false", common.ErrSearchFailed), Retryable: false}
	}

	count := parsed.Count
	if count == 0 {
		count = len(parsed.Items)
	}

	return model.FlightPage{
		OK:            true,
		Count:         count,
		Items:         parsed.Items,
		NextPageToken: parsed.NextPageToken,
	}, nil
}

// requestFilters returns the filters as sent on the wire. The backend only
// understands UTC ordering, so a local sort is applied client side instead.
func requestFilters(f model.Filters) model.Filters {
	if f.SortBy == model.SortLocal {
		f.SortBy = ""
	}
	f.DepartureTimeRange = f.DepartureTimeRange.Canonical()
	return f
}

// orderPage applies client-side ordering. The cached page is never modified.
func orderPage(page model.FlightPage, sortBy string) model.FlightPage {
	if sortBy != model.SortLocal || len(page.Items) < 2 {
		return page
	}
	page.Items = slices.Clone(page.Items)
	slices.SortStableFunc(page.Items, func(a, b model.Flight) int {
		return strings.Compare(a.Data.DepartureLocal, b.Data.DepartureLocal)
	})
	return page
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
