package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNilContext)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	assert.NoError(t, validateString("flights.db", "path"))
	assert.ErrorIs(t, validateString("", "path"), ErrEmptyString)
	assert.ErrorIs(t, validateString(" \t\n", "path"), ErrEmptyString)
}

func TestValidateQueryRecord(t *testing.T) {
	tests := []struct {
		record  *model.QueryRecord
		wantErr error
		name    string
	}{
		{
			name:   "parsed query",
			record: &model.QueryRecord{Query: "flights to Cebu", Filters: &model.Filters{}, ResultCount: 3},
		},
		{
			name:   "unparsed query without filters",
			record: &model.QueryRecord{Query: "???"},
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrNilParameter,
		},
		{
			name:    "blank query",
			record:  &model.QueryRecord{Query: "   "},
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "negative result count",
			record:  &model.QueryRecord{Query: "q", ResultCount: -1},
			wantErr: ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQueryRecord(tt.record)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
