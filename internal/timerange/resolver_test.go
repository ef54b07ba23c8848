package timerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketAt(t *testing.T) {
	tests := []struct {
		point TimePoint
		want  Bucket
	}{
		{0, Night},
		{299, Night},
		{300, Morning},
		{719, Morning},
		{720, Afternoon},
		{1079, Afternoon},
		{1080, Evening},
		{1379, Evening},
		{1380, Night},
		{1439, Night},
	}

	for _, tt := range tests {
		t.Run(tt.point.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, BucketAt(tt.point))
		})
	}
}

func TestFromPoint(t *testing.T) {
	tests := []struct {
		name  string
		point TimePoint
		want  Set
	}{
		{"morning point", 480, NewSet(Morning, Afternoon, Evening, Night)},
		{"afternoon point", 780, NewSet(Afternoon, Evening, Night)},
		{"evening point", 1200, NewSet(Evening, Night)},
		{"late night point", 1400, NewSet(Night)},
		{"early night point", 120, NewSet(Night)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromPoint(tt.point))
		})
	}
}

func TestBefore(t *testing.T) {
	tests := []struct {
		name  string
		point TimePoint
		want  Set
	}{
		{"inside morning has nothing before it", 600, 0},
		{"afternoon", 900, NewSet(Morning)},
		{"evening", 1200, NewSet(Morning, Afternoon)},
		{"night early segment", 120, NewSet(Morning, Afternoon, Evening)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Before(tt.point))
		})
	}
}

func TestOverlapping(t *testing.T) {
	tests := []struct {
		name string
		a, b TimePoint
		want Set
	}{
		{"15:00 to 23:00", 900, 1380, NewSet(Afternoon, Evening)},
		{"inside one bucket", 800, 900, NewSet(Afternoon)},
		{"single point", 1380, 1380, NewSet(Night)},
		{"ends on a boundary", 300, 720, NewSet(Morning)},
		{"crosses a boundary", 700, 721, NewSet(Morning, Afternoon)},
		{"early hours", 60, 360, NewSet(Night, Morning)},
		{"whole day", 0, 1439, NewSet(Morning, Afternoon, Evening, Night)},
		{"crosses midnight", 1320, 120, NewSet(Evening, Night)},
		{"crosses midnight into morning", 1400, 420, NewSet(Night, Morning)},
		{"ends at midnight", 1200, 0, NewSet(Evening, Night)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlapping(tt.a, tt.b))
		})
	}
}
