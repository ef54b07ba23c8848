package query

import (
	"testing"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtraction(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		wantStatus ExtractionStatus
		wantKeys   []string
	}{
		{"blank", "   \n", ExtractionEmpty, nil},
		{"empty object", "{}", ExtractionEmpty, nil},
		{"no json", "Sorry, I can't help.", ExtractionFailed, nil},
		{"invalid json", "{origin: SYD}", ExtractionFailed, nil},
		{"object inside an array", `[{"a":1}]`, ExtractionOK, []string{"a"}},
		{"fenced object", "```json\n{\"origin_data\":\"SYD\",\"limit\":5}\n```", ExtractionOK, []string{"origin_data", "limit"}},
		{"object in prose", `Here: {"sortBy":"utc"} done`, ExtractionOK, []string{"sortBy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeExtraction(tt.completion)
			assert.Equal(t, tt.wantStatus, got.Status)
			for _, key := range tt.wantKeys {
				assert.Contains(t, got.Fields, key)
			}
			if tt.wantStatus == ExtractionFailed {
				assert.NotEmpty(t, got.Reason)
				require.ErrorIs(t, got.Err(), common.ErrExtractionFailed)
			} else {
				assert.NoError(t, got.Err())
			}
		})
	}
}

func TestExtractionFieldCoercion(t *testing.T) {
	ex := DecodeExtraction(`{
		"origin_data": " SYD ",
		"destination_data": 123,
		"airline_data": ["PR"],
		"route_data": {"from": "SYD"},
		"sortBy": "",
		"service_date": null,
		"limit": "25",
		"bad_limit": -3,
		"float_limit": 12.0,
		"word_limit": "many"
	}`)
	require.Equal(t, ExtractionOK, ex.Status)

	s, ok := ex.String("origin_data")
	assert.True(t, ok)
	assert.Equal(t, "SYD", s)

	s, ok = ex.String("destination_data")
	assert.True(t, ok)
	assert.Equal(t, "123", s)

	for _, key := range []string{"airline_data", "route_data", "sortBy", "service_date", "missing"} {
		_, ok := ex.String(key)
		assert.False(t, ok, key)
	}

	n, ok := ex.Int("limit")
	assert.True(t, ok)
	assert.Equal(t, 25, n)

	n, ok = ex.Int("float_limit")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	for _, key := range []string{"bad_limit", "word_limit", "missing"} {
		_, ok := ex.Int(key)
		assert.False(t, ok, key)
	}
}

func TestExtractionStatusString(t *testing.T) {
	assert.Equal(t, "ok", ExtractionOK.String())
	assert.Equal(t, "empty", ExtractionEmpty.String())
	assert.Equal(t, "failed", ExtractionFailed.String())
}
