// Package timerange normalizes departure-time preferences into the four canonical
// time-of-day buckets used by the flight search backend.
package timerange

import (
	"fmt"
	"strings"
)

// MinutesPerDay is the number of minutes in a day; valid minute-of-day values are [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// Bucket is a canonical departure-time tag.
type Bucket string

// Canonical buckets, in vocabulary order.
const (
	Morning   Bucket = "morning"
	Afternoon Bucket = "afternoon"
	Evening   Bucket = "evening"
	Night     Bucket = "night"
)

// Segment is an inclusive minute-of-day range.
type Segment struct {
	Start int
	End   int
}

// Contains reports whether minute falls inside the segment.
func (s Segment) Contains(minute int) bool {
	return minute >= s.Start && minute <= s.End
}

// overlapsHalfOpen reports whether the segment intersects [from, to).
func (s Segment) overlapsHalfOpen(from, to int) bool {
	return s.Start < to && s.End >= from
}

// Interval associates a bucket with the part of the day it covers.
// Night wraps midnight, so it carries two segments.
type Interval struct {
	Bucket   Bucket
	Segments []Segment
}

// Contains reports whether minute falls inside any of the interval's segments.
func (iv Interval) Contains(minute int) bool {
	for _, seg := range iv.Segments {
		if seg.Contains(minute) {
			return true
		}
	}
	return false
}

func (iv Interval) overlapsHalfOpen(from, to int) bool {
	for _, seg := range iv.Segments {
		if seg.overlapsHalfOpen(from, to) {
			return true
		}
	}
	return false
}

// String renders the interval as clock ranges, e.g. "23:00-23:59, 00:00-04:59".
func (iv Interval) String() string {
	parts := make([]string, 0, len(iv.Segments))
	for _, seg := range iv.Segments {
		parts = append(parts, fmt.Sprintf("%s-%s", TimePoint(seg.Start), TimePoint(seg.End)))
	}
	return strings.Join(parts, ", ")
}

// vocabulary is ordered; index order drives "from point" and "before" expansion.
var vocabulary = [...]Interval{
	{Bucket: Morning, Segments: []Segment{{Start: 300, End: 719}}},
	{Bucket: Afternoon, Segments: []Segment{{Start: 720, End: 1079}}},
	{Bucket: Evening, Segments: []Segment{{Start: 1080, End: 1379}}},
	{Bucket: Night, Segments: []Segment{{Start: 1380, End: 1439}, {Start: 0, End: 299}}},
}

// Vocabulary returns the canonical intervals in vocabulary order.
// The returned slice is a copy.
func Vocabulary() []Interval {
	out := make([]Interval, len(vocabulary))
	for i, iv := range vocabulary {
		out[i] = Interval{
			Bucket:   iv.Bucket,
			Segments: append([]Segment(nil), iv.Segments...),
		}
	}
	return out
}

// Buckets returns the canonical buckets in vocabulary order.
func Buckets() []Bucket {
	out := make([]Bucket, len(vocabulary))
	for i, iv := range vocabulary {
		out[i] = iv.Bucket
	}
	return out
}

// IntervalFor returns the interval for a canonical bucket.
func IntervalFor(b Bucket) (Interval, bool) {
	idx := b.index()
	if idx < 0 {
		return Interval{}, false
	}
	return Vocabulary()[idx], true
}

// index returns the bucket's position in the vocabulary, or -1.
func (b Bucket) index() int {
	for i, iv := range vocabulary {
		if iv.Bucket == b {
			return i
		}
	}
	return -1
}

// Valid reports whether b is one of the canonical buckets.
func (b Bucket) Valid() bool {
	return b.index() >= 0
}

func (b Bucket) String() string {
	return string(b)
}

// ParseBucket matches s exactly (after trimming and lower-casing) against the canonical tags.
// Use Normalize for synonyms and free text.
func ParseBucket(s string) (Bucket, bool) {
	b := Bucket(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", false
	}
	return b, true
}
