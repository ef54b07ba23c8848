package timerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   TimePoint
		wantOK bool
	}{
		{"noon", "noon", 720, true},
		{"noon uppercase", "NOON", 720, true},
		{"midnight", "midnight", 0, true},
		{"24h single digit hour", "9:05", 545, true},
		{"24h afternoon", "13:00", 780, true},
		{"24h last minute", "23:59", 1439, true},
		{"24h midnight", "00:00", 0, true},
		{"12h pm", "1pm", 780, true},
		{"12h pm with space", "1 PM", 780, true},
		{"12h am", "7am", 420, true},
		{"12h with minutes", "7:30pm", 1170, true},
		{"12am is midnight", "12am", 0, true},
		{"12pm is noon", "12pm", 720, true},
		{"dotted suffix", "6 p.m.", 1080, true},
		{"bare hour", "15", 900, true},
		{"padded input", "  11:15  ", 675, true},
		{"hour out of range", "24:00", 0, false},
		{"minute out of range", "12:60", 0, false},
		{"12h hour zero", "0pm", 0, false},
		{"12h hour thirteen", "13pm", 0, false},
		{"bare hour out of range", "25", 0, false},
		{"words", "lunch time", 0, false},
		{"empty", "", 0, false},
		{"single minute digit", "9:5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClock(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTimePointString(t *testing.T) {
	assert.Equal(t, "00:00", Midnight.String())
	assert.Equal(t, "12:00", Noon.String())
	assert.Equal(t, "23:59", TimePoint(1439).String())
}

func TestNewTimePoint(t *testing.T) {
	p, err := NewTimePoint(780)
	require.NoError(t, err)
	assert.Equal(t, 13, p.Hour())
	assert.Equal(t, 0, p.Minute())

	_, err = NewTimePoint(MinutesPerDay)
	require.Error(t, err)

	_, err = NewTimePoint(-1)
	require.Error(t, err)

	_, err = Clock(23, 60)
	require.Error(t, err)
}
