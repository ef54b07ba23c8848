package tui

import (
	"github.com/Veraticus/flightdeck/internal/model"
)

// queryParsedMsg carries the filters extracted from a natural-language query.
type queryParsedMsg struct {
	err     error
	query   string
	filters model.Filters
}

// pageLoadedMsg carries one page of results.
type pageLoadedMsg struct {
	err    error
	page   model.FlightPage
	number int
	first  bool
}

// historyLoadedMsg carries recent queries.
type historyLoadedMsg struct {
	err     error
	records []model.QueryRecord
}

// querySavedMsg reports the outcome of writing a history entry.
type querySavedMsg struct {
	err error
}
