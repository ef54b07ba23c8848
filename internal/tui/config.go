package tui

import (
	"github.com/Veraticus/flightdeck/internal/service"
)

// Config holds TUI configuration.
type Config struct {
	Parser       service.QueryParser
	Searcher     service.FlightSearcher
	History      service.HistoryStorage
	Width        int
	Height       int
	HistoryLimit int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Width:        100,
		Height:       30,
		HistoryLimit: 10,
	}
}

// WithParser sets the natural-language query parser.
func WithParser(parser service.QueryParser) Option {
	return func(c *Config) {
		c.Parser = parser
	}
}

// WithSearcher sets the flight search backend.
func WithSearcher(searcher service.FlightSearcher) Option {
	return func(c *Config) {
		c.Searcher = searcher
	}
}

// WithHistory sets the query history store. Without one, history is disabled.
func WithHistory(history service.HistoryStorage) Option {
	return func(c *Config) {
		c.History = history
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHistoryLimit sets how many past queries the history panel shows.
func WithHistoryLimit(limit int) Option {
	return func(c *Config) {
		if limit > 0 {
			c.HistoryLimit = limit
		}
	}
}
