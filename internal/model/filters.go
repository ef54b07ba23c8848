package model

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/flightdeck/internal/timerange"
)

// Filter defaults shared by the manual and natural-language search paths.
const (
	DefaultServiceDate = "2025-10-09"
	DefaultPageSize    = 20
	DefaultAILimit     = 100
)

// AvailableDates are the service dates the flight backend has data for.
var AvailableDates = []string{"2025-10-02", "2025-10-03", "2025-10-08", "2025-10-09", "2025-10-10"}

// Sort orders accepted by the flight backend.
const (
	SortDepartureTime = "departure_time"
	SortArrivalTime   = "arrival_time"
	SortAirline       = "airline"
	SortUTC           = "utc"
	SortLocal         = "local"
)

// Filters is the search request sent to the flight backend.
type Filters struct {
	ServiceDate        string        `json:"service_date"`
	Origin             string        `json:"origin_data,omitempty"`
	Destination        string        `json:"destination_data,omitempty"`
	Airline            string        `json:"airline_data,omitempty"`
	Route              string        `json:"route_data,omitempty"`
	SortBy             string        `json:"sortBy,omitempty"`
	StartAfterDocID    string        `json:"startAfterDocId,omitempty"`
	DepartureTimeRange timerange.Set `json:"departure_time_range"`
	Limit              int           `json:"limit"`
}

// DefaultFilters returns the filters the dashboard starts with.
func DefaultFilters() Filters {
	return Filters{
		ServiceDate: DefaultServiceDate,
		Limit:       DefaultPageSize,
	}
}

// Validate checks the invariants the backend relies on.
func (f *Filters) Validate() error {
	if strings.TrimSpace(f.ServiceDate) == "" {
		return fmt.Errorf("service date is required")
	}
	if f.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", f.Limit)
	}
	if f.DepartureTimeRange != f.DepartureTimeRange.Canonical() {
		return fmt.Errorf("departure time range contains non-canonical buckets")
	}
	return nil
}

// WithPageToken returns a copy of f positioned after the given document.
func (f Filters) WithPageToken(token string) Filters {
	f.StartAfterDocID = token
	return f
}

// CacheKey identifies a request for result caching. Equal filters yield equal keys.
func (f Filters) CacheKey() string {
	data, err := json.Marshal(f)
	if err != nil {
		// Filters only holds strings, ints and a Set; Marshal does not fail on them.
		data = []byte(fmt.Sprintf("%+v", f))
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// Summary renders the non-empty filters on one line for logs and the CLI.
func (f Filters) Summary() string {
	parts := []string{"date=" + f.ServiceDate}
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, name+"="+value)
		}
	}
	add("origin", f.Origin)
	add("destination", f.Destination)
	add("airline", f.Airline)
	add("route", f.Route)
	add("sort", f.SortBy)
	if !f.DepartureTimeRange.IsEmpty() {
		parts = append(parts, "time="+strings.Join(f.DepartureTimeRange.Strings(), ","))
	}
	parts = append(parts, fmt.Sprintf("limit=%d", f.Limit))
	return strings.Join(parts, " ")
}
