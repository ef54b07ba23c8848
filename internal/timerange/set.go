package timerange

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Set is a de-duplicated set of canonical buckets.
// The zero value is the empty set, meaning no time preference.
type Set uint8

// NewSet builds a set from buckets, ignoring anything non-canonical.
func NewSet(buckets ...Bucket) Set {
	var s Set
	for _, b := range buckets {
		s = s.With(b)
	}
	return s
}

// All returns the set containing every canonical bucket.
func All() Set {
	return NewSet(Buckets()...)
}

// With returns s plus b. Non-canonical buckets are ignored.
func (s Set) With(b Bucket) Set {
	idx := b.index()
	if idx < 0 {
		return s
	}
	return s | 1<<idx
}

// Has reports whether b is in the set.
func (s Set) Has(b Bucket) bool {
	idx := b.index()
	return idx >= 0 && s&(1<<idx) != 0
}

// Union returns every bucket in s or other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Canonical drops any bits outside the vocabulary.
func (s Set) Canonical() Set {
	return s & All()
}

// IsEmpty reports whether the set carries no preference.
func (s Set) IsEmpty() bool {
	return s.Canonical() == 0
}

// Len returns the number of buckets in the set.
func (s Set) Len() int {
	return len(s.Buckets())
}

// Buckets returns the members in vocabulary order. Never nil.
func (s Set) Buckets() []Bucket {
	out := make([]Bucket, 0, len(vocabulary))
	for i, iv := range vocabulary {
		if s&(1<<i) != 0 {
			out = append(out, iv.Bucket)
		}
	}
	return out
}

// Strings returns the members as plain strings in vocabulary order.
func (s Set) Strings() []string {
	buckets := s.Buckets()
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = string(b)
	}
	return out
}

func (s Set) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}

// MarshalJSON encodes the set as an array of tags, [] when empty.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes any extractor-shaped value (array, delimited string, null) through Normalize.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode departure time range: %w", err)
	}
	*s = Normalize(raw)
	return nil
}
