package timerange

// BucketAt returns the bucket whose interval contains p.
// Night covers both 23:00-23:59 and 00:00-04:59.
func BucketAt(p TimePoint) Bucket {
	minute := int(p)
	for _, iv := range vocabulary {
		if iv.Contains(minute) {
			return iv.Bucket
		}
	}
	// Unreachable while the vocabulary tiles the day.
	return Night
}

// FromPoint returns the bucket containing p and every later bucket through night.
// It implements "after X".
func FromPoint(p TimePoint) Set {
	var s Set
	for i := BucketAt(p).index(); i < len(vocabulary); i++ {
		s = s.With(vocabulary[i].Bucket)
	}
	return s
}

// Before returns every bucket strictly preceding the bucket containing p.
// A point inside morning yields the empty set.
func Before(p TimePoint) Set {
	var s Set
	for i := 0; i < BucketAt(p).index(); i++ {
		s = s.With(vocabulary[i].Bucket)
	}
	return s
}

// Overlapping returns every bucket whose interval intersects the span from a to b.
//
// The span is half-open, so a flight window ending exactly at a bucket boundary does
// not pull in the next bucket. When a equals b the span is the single point a.
// When a is later than b the span crosses midnight and is resolved as [a, 24:00) plus [00:00, b).
func Overlapping(a, b TimePoint) Set {
	switch {
	case a == b:
		return NewSet(BucketAt(a))
	case a < b:
		return overlappingHalfOpen(int(a), int(b))
	default:
		return overlappingHalfOpen(int(a), MinutesPerDay).Union(overlappingHalfOpen(0, int(b)))
	}
}

func overlappingHalfOpen(from, to int) Set {
	var s Set
	if from >= to {
		return s
	}
	for _, iv := range vocabulary {
		if iv.overlapsHalfOpen(from, to) {
			s = s.With(iv.Bucket)
		}
	}
	return s
}
