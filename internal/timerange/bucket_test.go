package timerange

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyTilesTheDay(t *testing.T) {
	owners := make([]int, MinutesPerDay)
	for _, iv := range Vocabulary() {
		for _, seg := range iv.Segments {
			for m := seg.Start; m <= seg.End; m++ {
				owners[m]++
			}
		}
	}

	for minute, count := range owners {
		require.Equalf(t, 1, count, "minute %d covered %d times", minute, count)
	}
}

func TestVocabularyOrder(t *testing.T) {
	assert.Equal(t, []Bucket{Morning, Afternoon, Evening, Night}, Buckets())
}

func TestVocabularyReturnsCopy(t *testing.T) {
	v := Vocabulary()
	v[3].Segments[0].Start = 0

	night, ok := IntervalFor(Night)
	require.True(t, ok)
	assert.Equal(t, 1380, night.Segments[0].Start)
}

func TestIntervalString(t *testing.T) {
	night, ok := IntervalFor(Night)
	require.True(t, ok)
	assert.Equal(t, "23:00-23:59, 00:00-04:59", night.String())

	_, ok = IntervalFor("brunch")
	assert.False(t, ok)
}

func TestParseBucket(t *testing.T) {
	tests := []struct {
		input  string
		want   Bucket
		wantOK bool
	}{
		{"morning", Morning, true},
		{"  NIGHT ", Night, true},
		{"Evening", Evening, true},
		{"late night", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseBucket(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("dedupes and orders", func(t *testing.T) {
		s := NewSet(Night, Morning, Night, "brunch")
		assert.Equal(t, []Bucket{Morning, Night}, s.Buckets())
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has(Night))
		assert.False(t, s.Has(Evening))
		assert.Equal(t, "{morning, night}", s.String())
	})

	t.Run("empty set", func(t *testing.T) {
		var s Set
		assert.True(t, s.IsEmpty())
		assert.NotNil(t, s.Buckets())
		assert.Empty(t, s.Buckets())
	})

	t.Run("canonical drops stray bits", func(t *testing.T) {
		s := Set(0xF0) | NewSet(Evening)
		assert.Equal(t, NewSet(Evening), s.Canonical())
	})

	t.Run("json round trip", func(t *testing.T) {
		data, err := json.Marshal(NewSet(Evening, Afternoon))
		require.NoError(t, err)
		assert.JSONEq(t, `["afternoon","evening"]`, string(data))

		data, err = json.Marshal(Set(0))
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))

		var s Set
		require.NoError(t, json.Unmarshal([]byte(`["Late Night", "MORNING", "sometime"]`), &s))
		assert.Equal(t, NewSet(Morning, Night), s)

		require.NoError(t, json.Unmarshal([]byte(`null`), &s))
		assert.True(t, s.IsEmpty())
	})
}
