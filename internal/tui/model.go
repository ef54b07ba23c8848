// Package tui implements the interactive flight search dashboard.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/flightdeck/internal/cli"
	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/flights"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateInput State = iota
	StateLoading
	StateResults
	StateHistory
)

func (s State) String() string {
	switch s {
	case StateInput:
		return "input"
	case StateLoading:
		return "loading"
	case StateResults:
		return "results"
	case StateHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Model holds the dashboard state.
type Model struct {
	ctx      context.Context
	lastErr  error
	pager    *flights.Pager
	filters  *model.Filters
	config   Config
	keymap   KeyMap
	input    textinput.Model
	spinner  spinner.Model
	results  table.Model
	history  table.Model
	help     help.Model
	query    string
	status   string
	records  []model.QueryRecord
	page     model.FlightPage
	pageNum  int
	width    int
	height   int
	state    State
	previous State
	quitting bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "Flights from Sydney to Manila after lunch"
	input.Prompt = "✈ "
	input.CharLimit = 300
	input.Width = cfg.Width - 6
	input.Focus()

	columns := make([]table.Column, len(cli.FlightColumns))
	for i, title := range cli.FlightColumns {
		columns[i] = table.Column{Title: title, Width: len(title) + 4}
	}

	m := Model{
		ctx:     ctx,
		config:  cfg,
		keymap:  DefaultKeyMap(),
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cli.InfoStyle)),
		results: table.New(table.WithColumns(columns), table.WithFocused(true)),
		history: table.New(table.WithColumns([]table.Column{
			{Title: "When", Width: 16},
			{Title: "Query", Width: 48},
			{Title: "Results", Width: 8},
		}), table.WithFocused(true)),
		help:   help.New(),
		width:  cfg.Width,
		height: cfg.Height,
		state:  StateInput,
	}
	m.resize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case queryParsedMsg:
		return m.handleQueryParsed(msg)

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case querySavedMsg:
		if msg.err != nil {
			common.LogError(msg.err, "failed to save query history", nil)
		}
		return m, nil
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateInput:
		if key.Matches(msg, m.keymap.Submit) {
			return m.submit(m.input.Value())
		}
		if msg.Type == tea.KeyEsc && m.pageNum > 0 {
			m.state = StateResults
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case StateResults:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextPage):
			if m.pager == nil || !m.pager.HasNext() {
				return m, nil
			}
			return m.startLoading("Loading next page...", m.loadPage(stepNext, false))
		case key.Matches(msg, m.keymap.PrevPage):
			if m.pager == nil || !m.pager.HasPrevious() {
				return m, nil
			}
			return m.startLoading("Loading previous page...", m.loadPage(stepPrevious, false))
		case key.Matches(msg, m.keymap.History):
			return m.openHistory()
		case key.Matches(msg, m.keymap.Back):
			return m.focusInput()
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd

	case StateHistory:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Submit):
			cursor := m.history.Cursor()
			if cursor < 0 || cursor >= len(m.records) {
				return m, nil
			}
			q := m.records[cursor].Query
			m.input.SetValue(q)
			return m.submit(q)
		case key.Matches(msg, m.keymap.Back):
			if m.previous == StateResults {
				m.state = StateResults
				return m, nil
			}
			return m.focusInput()
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submit starts parsing a query. Blank queries are ignored.
func (m Model) submit(q string) (tea.Model, tea.Cmd) {
	q = strings.TrimSpace(q)
	if q == "" {
		return m, nil
	}
	m.query = q
	m.lastErr = nil
	m.input.Blur()
	return m.startLoading("Understanding your query...", m.parseQuery(q))
}

func (m Model) startLoading(status string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.state != StateLoading {
		m.previous = m.state
	}
	m.state = StateLoading
	m.status = status
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m Model) focusInput() (tea.Model, tea.Cmd) {
	m.state = StateInput
	return m, m.input.Focus()
}

func (m Model) openHistory() (tea.Model, tea.Cmd) {
	if m.config.History == nil {
		return m, nil
	}
	return m.startLoading("Loading history...", m.loadHistory())
}

func (m Model) handleQueryParsed(msg queryParsedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Debug("query parsing failed", "query", msg.query, "error", msg.err)
		m.lastErr = msg.err
		m.status = ""
		m.state = StateInput
		return m, m.input.Focus()
	}

	filters := msg.filters
	m.filters = &filters
	if m.config.Searcher != nil {
		m.pager = flights.NewPager(m.config.Searcher, filters)
	}
	return m.startLoading("Searching flights...", m.loadPage(stepFirst, true))
}

func (m Model) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	if msg.err != nil {
		m.lastErr = common.NewUserError("An error occurred while fetching flights", msg.err)
		if m.previous == StateResults && !msg.first {
			m.state = StateResults
			return m, nil
		}
		return m.focusInput()
	}

	m.lastErr = nil
	m.page = msg.page
	m.pageNum = msg.number
	m.state = StateResults

	rows := make([]table.Row, 0, len(msg.page.Items))
	for _, f := range msg.page.Items {
		rows = append(rows, table.Row(cli.FlightRow(f)))
	}
	m.results.SetRows(rows)
	m.results.GotoTop()

	if msg.first {
		return m, m.saveQuery(m.query, m.filters, msg.page.Count)
	}
	return m, nil
}

func (m Model) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	if msg.err != nil {
		m.lastErr = msg.err
		m.state = m.previous
		return m, nil
	}

	m.records = msg.records
	rows := make([]table.Row, 0, len(msg.records))
	for _, r := range msg.records {
		rows = append(rows, table.Row{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Query,
			resultCount(r),
		})
	}
	m.history.SetRows(rows)
	m.history.GotoTop()
	m.state = StateHistory
	return m, nil
}

// resize fits the tables to the terminal.
func (m *Model) resize() {
	tableHeight := m.height - 12
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.results.SetHeight(tableHeight)
	m.history.SetHeight(tableHeight)
	m.results.SetWidth(m.width - 2)
	m.history.SetWidth(m.width - 2)
	if m.width > 10 {
		m.input.Width = m.width - 6
	}
	m.help.Width = m.width
}

func resultCount(r model.QueryRecord) string {
	if r.Filters == nil {
		return "-"
	}
	return strconv.Itoa(r.ResultCount)
}

// errorText returns the message shown for the last error.
func (m Model) errorText() string {
	if m.lastErr == nil {
		return ""
	}
	return common.UserMessage(m.lastErr, m.lastErr.Error())
}
