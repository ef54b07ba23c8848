package flights

import (
	"context"
	"errors"

	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/service"
)

var (
	// ErrNoNextPage is returned by Next on the last page.
	ErrNoNextPage = errors.New("no next page")
	// ErrNoPreviousPage is returned by Previous on the first page.
	ErrNoPreviousPage = errors.New("no previous page")
)

// Pager walks result pages for one set of filters. The backend only hands out
// forward tokens, so the token that produced each visited page is remembered
// for going back. State changes only when a fetch succeeds.
type Pager struct {
	searcher service.FlightSearcher
	tokens   map[int]string
	filters  model.Filters
	current  model.FlightPage
	page     int
}

// NewPager creates a pager. A page token already set on filters becomes the
// starting point of page 1.
func NewPager(searcher service.FlightSearcher, filters model.Filters) *Pager {
	return &Pager{
		searcher: searcher,
		filters:  filters,
		tokens:   map[int]string{},
	}
}

// First loads page 1 and forgets any visited pages.
func (p *Pager) First(ctx context.Context) (model.FlightPage, error) {
	page, err := p.searcher.Search(ctx, p.filters)
	if err != nil {
		return model.FlightPage{}, err
	}
	p.tokens = map[int]string{1: p.filters.StartAfterDocID}
	p.page = 1
	p.current = page
	return page, nil
}

// Next loads the page after the current one.
func (p *Pager) Next(ctx context.Context) (model.FlightPage, error) {
	if !p.HasNext() {
		return model.FlightPage{}, ErrNoNextPage
	}

	token := p.current.NextToken()
	page, err := p.searcher.Search(ctx, p.filters.WithPageToken(token))
	if err != nil {
		return model.FlightPage{}, err
	}
	p.page++
	p.tokens[p.page] = token
	p.current = page
	return page, nil
}

// Previous reloads the page before the current one.
func (p *Pager) Previous(ctx context.Context) (model.FlightPage, error) {
	if !p.HasPrevious() {
		return model.FlightPage{}, ErrNoPreviousPage
	}

	prev := p.page - 1
	page, err := p.searcher.Search(ctx, p.filters.WithPageToken(p.tokens[prev]))
	if err != nil {
		return model.FlightPage{}, err
	}
	p.page = prev
	p.current = page
	return page, nil
}

// HasNext reports whether the current page carries a next-page token.
func (p *Pager) HasNext() bool {
	return p.page > 0 && p.current.HasNext()
}

// HasPrevious reports whether there is a page before the current one.
func (p *Pager) HasPrevious() bool {
	return p.page > 1
}

// Page returns the 1-based current page number, or 0 before First.
func (p *Pager) Page() int {
	return p.page
}

// Current returns the most recently loaded page.
func (p *Pager) Current() model.FlightPage {
	return p.current
}

// Filters returns the filters the pager was created with.
func (p *Pager) Filters() model.Filters {
	return p.filters
}
