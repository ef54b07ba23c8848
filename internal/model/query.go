package model

import "time"

// QueryRecord is one natural-language query in the history log.
type QueryRecord struct {
	CreatedAt   time.Time
	Filters     *Filters // nil when the query could not be parsed
	Query       string
	ID          int64
	ResultCount int
}
