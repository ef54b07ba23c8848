// Package query turns natural-language flight questions into search filters.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/llm"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/timerange"
)

// ErrQueryNotUnderstood is returned when the extractor could not be reached.
var ErrQueryNotUnderstood = errors.New("could not parse query")

// UserMessageQueryFailed is shown when the extractor call fails.
const UserMessageQueryFailed = "Failed to process your query. Please try again."

// Extractor field names.
const (
	fieldServiceDate   = "service_date"
	fieldOrigin        = "origin_data"
	fieldDestination   = "destination_data"
	fieldAirline       = "airline_data"
	fieldRoute         = "route_data"
	fieldSortBy        = "sortBy"
	fieldLimit         = "limit"
	fieldDepartureTime = "departure_time_range"
)

// Options controls the defaults and prompt context of a Parser.
type Options struct {
	Now            func() time.Time
	FallbackDate   string
	AvailableDates []string
	Limit          int
}

// Parser runs the extractor and reconciles its output with the rule-based
// time range parser.
type Parser struct {
	client llm.Client
	logger *slog.Logger
	opts   Options
}

// NewParser creates a Parser. Zero options take the model defaults.
func NewParser(client llm.Client, logger *slog.Logger, opts Options) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FallbackDate == "" {
		opts.FallbackDate = model.DefaultServiceDate
	}
	if len(opts.AvailableDates) == 0 {
		opts.AvailableDates = model.AvailableDates
	}
	if opts.Limit <= 0 {
		opts.Limit = model.DefaultAILimit
	}

	return &Parser{
		client: client,
		logger: logger,
		opts:   opts,
	}
}

// Parse asks the extractor for filters and normalizes the answer. The only
// error is a failed extractor call, in which case no filters are produced.
func (p *Parser) Parse(ctx context.Context, text string) (model.Filters, error) {
	start := time.Now()
	completion, err := p.client.Complete(ctx, p.buildPrompt(text))
	if err != nil {
		p.logger.Error("extractor call failed",
			"query", text,
			"error", err)
		return model.Filters{}, common.NewUserError(UserMessageQueryFailed,
			fmt.Errorf("%w: %w", ErrQueryNotUnderstood, err))
	}

	p.logger.Debug("extractor responded",
		"query", text,
		"latency_ms", time.Since(start).Milliseconds())

	return p.ParseExtraction(text, completion), nil
}

// ParseExtraction builds filters from a completion the caller already has.
func (p *Parser) ParseExtraction(text, completion string) model.Filters {
	extraction := DecodeExtraction(completion)
	if extraction.Status != ExtractionOK {
		p.logger.Debug("extractor produced nothing usable",
			"status", extraction.Status.String(),
			"error", extraction.Err())
	}
	return p.buildFilters(text, extraction)
}

func (p *Parser) buildFilters(text string, extraction Extraction) model.Filters {
	timeRange := timerange.Normalize(extraction.Raw(fieldDepartureTime))
	if timeRange.IsEmpty() && strings.TrimSpace(text) != "" {
		var rule string
		timeRange, rule = timerange.ExplainQuery(text)
		p.logger.Debug("time range from query text",
			"rule", rule,
			"time_range", timeRange.String())
	}

	filters := model.Filters{
		ServiceDate:        p.opts.FallbackDate,
		Limit:              p.opts.Limit,
		DepartureTimeRange: timeRange.Canonical(),
	}

	if date, ok := extraction.String(fieldServiceDate); ok {
		filters.ServiceDate = date
	}
	if limit, ok := extraction.Int(fieldLimit); ok {
		filters.Limit = limit
	}
	filters.Origin, _ = extraction.String(fieldOrigin)
	filters.Destination, _ = extraction.String(fieldDestination)
	filters.Airline, _ = extraction.String(fieldAirline)
	filters.Route, _ = extraction.String(fieldRoute)
	filters.SortBy, _ = extraction.String(fieldSortBy)

	return filters
}

func (p *Parser) buildPrompt(text string) string {
	return fmt.Sprintf(`Parse the following natural language flight query into structured filters. Today's date is %s.

Available data dates: %s

Query: %q

Extract and return ONLY a valid JSON object with these optional fields:
- service_date (YYYY-MM-DD format, use one of the available dates above)
- origin_data (3-letter airport code)
- destination_data (3-letter airport code)
- airline_data (2-letter airline code)
- route_data (format: XXX-YYY)
- sortBy ("utc" or "local")
- limit (number of results, only if the query asks for a specific count)
- departure_time_range (array using only "morning", "afternoon", "evening", "night")

Time interpretations:
- "morning" = departures 05:00-11:59
- "afternoon" = departures 12:00-17:59
- "evening" = departures 18:00-22:59
- "night" = departures 23:00-04:59
- "after lunch" = afternoon, evening, night
- "after 5pm" = every period from 17:00 to the end of the day

Country to airport mappings (examples):
- Australia: SYD, MEL, BNE, PER
- Philippines: MNL, CEB
- USA: LAX, JFK, ORD
- UK: LHR, LGW

Return ONLY the JSON object, no explanation:`,
		p.opts.Now().Format("2006-01-02"),
		strings.Join(p.opts.AvailableDates, ", "),
		text)
}
