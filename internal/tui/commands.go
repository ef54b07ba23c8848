package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/flightdeck/internal/flights"
	"github.com/Veraticus/flightdeck/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	parseTimeout   = 45 * time.Second
	searchTimeout  = 60 * time.Second
	historyTimeout = 5 * time.Second
)

// parseQuery runs the query parser.
func (m Model) parseQuery(query string) tea.Cmd {
	parser := m.config.Parser
	return func() tea.Msg {
		if parser == nil {
			return queryParsedMsg{query: query, err: fmt.Errorf("query parser not configured")}
		}

		ctx, cancel := context.WithTimeout(m.ctx, parseTimeout)
		defer cancel()

		filters, err := parser.Parse(ctx, query)
		return queryParsedMsg{query: query, filters: filters, err: err}
	}
}

// pagerStep is one pager operation.
type pagerStep func(*flights.Pager, context.Context) (model.FlightPage, error)

var (
	stepFirst    pagerStep = (*flights.Pager).First
	stepNext     pagerStep = (*flights.Pager).Next
	stepPrevious pagerStep = (*flights.Pager).Previous
)

// loadPage runs one pager step. Only one step is in flight at a time; the
// model ignores navigation keys while loading.
func (m Model) loadPage(step pagerStep, first bool) tea.Cmd {
	pager := m.pager
	return func() tea.Msg {
		if pager == nil {
			return pageLoadedMsg{err: fmt.Errorf("flight search not configured"), first: first}
		}

		ctx, cancel := context.WithTimeout(m.ctx, searchTimeout)
		defer cancel()

		page, err := step(pager, ctx)
		return pageLoadedMsg{page: page, number: pager.Page(), err: err, first: first}
	}
}

// loadHistory loads recent queries.
func (m Model) loadHistory() tea.Cmd {
	history := m.config.History
	limit := m.config.HistoryLimit
	return func() tea.Msg {
		if history == nil {
			return historyLoadedMsg{err: fmt.Errorf("history not configured")}
		}

		ctx, cancel := context.WithTimeout(m.ctx, historyTimeout)
		defer cancel()

		records, err := history.RecentQueries(ctx, limit)
		return historyLoadedMsg{records: records, err: err}
	}
}

// saveQuery records a query in the history.
func (m Model) saveQuery(query string, filters *model.Filters, resultCount int) tea.Cmd {
	history := m.config.History
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, historyTimeout)
		defer cancel()

		err := history.SaveQuery(ctx, &model.QueryRecord{
			Query:       query,
			Filters:     filters,
			ResultCount: resultCount,
		})
		return querySavedMsg{err: err}
	}
}
