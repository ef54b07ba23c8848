package timerange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimePoint is a minute of the day in [0, MinutesPerDay).
type TimePoint int

// Named clock points.
const (
	Midnight TimePoint = 0
	Noon     TimePoint = 720
)

// NewTimePoint validates a minute-of-day value.
func NewTimePoint(minute int) (TimePoint, error) {
	if minute < 0 || minute >= MinutesPerDay {
		return 0, fmt.Errorf("minute of day %d out of range [0,%d)", minute, MinutesPerDay)
	}
	return TimePoint(minute), nil
}

// Clock builds a point from an hour and minute, validating both.
func Clock(hour, minute int) (TimePoint, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %02d:%02d", hour, minute)
	}
	return TimePoint(hour*60 + minute), nil
}

// Hour returns the hour component.
func (p TimePoint) Hour() int { return int(p) / 60 }

// Minute returns the minute component.
func (p TimePoint) Minute() int { return int(p) % 60 }

// String formats the point as HH:MM.
func (p TimePoint) String() string {
	return fmt.Sprintf("%02d:%02d", p.Hour(), p.Minute())
}

var (
	clock24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12Pattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)$`)
	bareHourRegex  = regexp.MustCompile(`^(\d{1,2})$`)
	spaceRun       = regexp.MustCompile(`\s+`)
)

// ParseClock converts a short clock expression into a TimePoint.
//
// Accepted forms, case-insensitive: "noon", "midnight", 24-hour "H:MM"/"HH:MM",
// 12-hour "H"/"H:MM" followed by am/pm (or a.m./p.m.), and a bare 24-hour "H".
// Anything else reports false; callers skip the rule instead of guessing.
func ParseClock(s string) (TimePoint, bool) {
	s = strings.ToLower(strings.TrimSpace(spaceRun.ReplaceAllString(s, " ")))

	switch s {
	case "noon", "midday":
		return Noon, true
	case "midnight":
		return Midnight, true
	}

	if m := clock24Pattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		p, err := Clock(hour, minute)
		return p, err == nil
	}

	if m := clock12Pattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, false
		}
		hour %= 12
		if strings.HasPrefix(m[3], "p") {
			hour += 12
		}
		p, err := Clock(hour, minute)
		return p, err == nil
	}

	if m := bareHourRegex.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		p, err := Clock(hour, 0)
		return p, err == nil
	}

	return 0, false
}
