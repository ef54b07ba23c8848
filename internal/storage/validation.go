package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/flightdeck/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidQuery    = errors.New("invalid query record")
	ErrInvalidPageSize = errors.New("limit must be positive")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateQueryRecord validates a history record before it is written.
func validateQueryRecord(record *model.QueryRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if strings.TrimSpace(record.Query) == "" {
		return fmt.Errorf("%w: query text is required", ErrInvalidQuery)
	}
	if record.ResultCount < 0 {
		return fmt.Errorf("%w: result count cannot be negative", ErrInvalidQuery)
	}
	return nil
}
