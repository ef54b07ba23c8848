package timerange

import (
	"regexp"
	"strings"
)

// synonym maps phrase fragments to a bucket. Order is priority: the first entry whose
// fragment appears in an element wins.
type synonym struct {
	bucket    Bucket
	fragments []string
}

var synonyms = []synonym{
	{bucket: Morning, fragments: []string{"morning"}},
	{bucket: Afternoon, fragments: []string{"afternoon", "after noon", "after lunch"}},
	{bucket: Evening, fragments: []string{"evening"}},
	{bucket: Night, fragments: []string{"night", "late night", "overnight"}},
}

// noPreference phrases explicitly carry no constraint.
var noPreference = map[string]struct{}{
	"any":           {},
	"all":           {},
	"all day":       {},
	"no preference": {},
	"any time":      {},
	"anytime":       {},
}

var listDelimiters = regexp.MustCompile(`[,;|/]`)

// Normalize maps an untrusted departure_time_range value onto canonical buckets.
//
// raw may be nil, a string (optionally delimited by , ; | or /), or a list of strings,
// as decoded from JSON. Elements are case- and whitespace-insensitive and matched by
// phrase containment. Unrecognized elements, no-preference phrases and values of any
// other type contribute nothing. Normalize never panics.
func Normalize(raw any) Set {
	switch v := raw.(type) {
	case nil:
		return 0
	case Set:
		return v.Canonical()
	case string:
		return normalizeElements([]string{v})
	case []string:
		return normalizeElements(v)
	case []Bucket:
		elems := make([]string, len(v))
		for i, b := range v {
			elems[i] = string(b)
		}
		return normalizeElements(elems)
	case []any:
		elems := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				elems = append(elems, s)
			}
		}
		return normalizeElements(elems)
	default:
		return 0
	}
}

// NormalizeStrings is Normalize for CLI flag values.
func NormalizeStrings(values ...string) Set {
	return normalizeElements(values)
}

func normalizeElements(elems []string) Set {
	var s Set
	for _, elem := range elems {
		for _, part := range listDelimiters.Split(elem, -1) {
			if b, ok := matchSynonym(part); ok {
				s = s.With(b)
			}
		}
	}
	return s
}

// matchSynonym resolves one list element to at most one bucket.
func matchSynonym(elem string) (Bucket, bool) {
	elem = cleanPhrase(elem)
	if elem == "" {
		return "", false
	}
	if _, ok := noPreference[elem]; ok {
		return "", false
	}
	for _, syn := range synonyms {
		for _, frag := range syn.fragments {
			if strings.Contains(elem, frag) {
				return syn.bucket, true
			}
		}
	}
	return "", false
}

// cleanPhrase lower-cases, trims and collapses internal whitespace.
func cleanPhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
