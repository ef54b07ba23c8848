package timerange

import (
	"regexp"
	"strings"
)

// fallbackRule is one entry of the fallback rule table. match returns ok=false to let
// the next rule run; ok=true ends evaluation, even with an empty set.
type fallbackRule struct {
	name  string
	match func(query string) (Set, bool)
}

// RuleNone is reported by ExplainQuery when no rule matched.
const RuleNone = "none"

// The am/pm suffix must end a word, so "after 3 amsterdam" reads as 3:00.
const clockExpr = `(noon|midnight|midday|\d{1,2}(?::\d{2})?(?:\s*(?:a\.m\.|p\.m\.|(?:am|pm)\b))?)`

var (
	afterLunchPattern    = regexp.MustCompile(`\bafter\s+(?:lunch|noon)\b`)
	lateNightPattern     = regexp.MustCompile(`\blate[\s-]night|\bovernight\b`)
	noPreferencePattern  = regexp.MustCompile(`\bany\s*time\b|\ball\s+day\b|\bno\s+preference\b|\bany\b`)
	afterClockPattern    = regexp.MustCompile(`\bafter\s+` + clockExpr + `([a-z]*)`)
	beforeClockPattern   = regexp.MustCompile(`\bbefore\s+` + clockExpr + `([a-z]*)`)
	betweenClocksPattern = regexp.MustCompile(`\bbetween\s+` + clockExpr + `([a-z]*)\s*(?:and|-|–)\s*` + clockExpr + `([a-z]*)`)
	meridiemSuffix       = regexp.MustCompile(`(a\.m\.|p\.m\.|am|pm)$`)
)

// bucketWords are the literal words the keyword rules look for. Night also
// covers "late night", "overnight" and "tonight" by containment.
var bucketWords = []struct {
	bucket Bucket
	word   string
}{
	{Morning, "morning"},
	{Afternoon, "afternoon"},
	{Evening, "evening"},
	{Night, "night"},
}

// fallbackRules is evaluated in order; the first rule that matches wins.
var fallbackRules = []fallbackRule{
	{name: "after-lunch", match: matchAfterLunch},
	{name: "late-night", match: matchLateNight},
	{name: "single-period", match: matchSinglePeriod},
	{name: "no-preference", match: matchNoPreference},
	{name: "after-time", match: matchAfterClock},
	{name: "before-time", match: matchBeforeClock},
	{name: "between-times", match: matchBetweenClocks},
	{name: "keyword-scan", match: matchKeywords},
}

// ParseQuery derives departure-time buckets directly from free query text.
// It is used when the extractor's own time range is unusable. Unparseable clock
// phrases fall through to later rules; the worst case is the empty set.
func ParseQuery(query string) Set {
	s, _ := ExplainQuery(query)
	return s
}

// ExplainQuery is ParseQuery that also names the rule that produced the result.
func ExplainQuery(query string) (Set, string) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, RuleNone
	}
	for _, rule := range fallbackRules {
		if s, ok := rule.match(q); ok {
			return s.Canonical(), rule.name
		}
	}
	return 0, RuleNone
}

func matchAfterLunch(q string) (Set, bool) {
	if !afterLunchPattern.MatchString(q) {
		return 0, false
	}
	return NewSet(Afternoon, Evening, Night), true
}

func matchLateNight(q string) (Set, bool) {
	if !lateNightPattern.MatchString(q) {
		return 0, false
	}
	return NewSet(Night), true
}

// matchSinglePeriod applies when exactly one bucket word appears and it is one of
// morning, afternoon or evening. Several bucket words are left to the keyword scan.
func matchSinglePeriod(q string) (Set, bool) {
	found := scanKeywords(q)
	if found.Len() != 1 || found.Has(Night) {
		return 0, false
	}
	return found, true
}

func matchNoPreference(q string) (Set, bool) {
	if !noPreferencePattern.MatchString(q) {
		return 0, false
	}
	return 0, true
}

func matchAfterClock(q string) (Set, bool) {
	p, ok := clockAfterKeyword(afterClockPattern, q)
	if !ok {
		return 0, false
	}
	return FromPoint(p), true
}

func matchBeforeClock(q string) (Set, bool) {
	p, ok := clockAfterKeyword(beforeClockPattern, q)
	if !ok {
		return 0, false
	}
	return Before(p), true
}

func matchBetweenClocks(q string) (Set, bool) {
	m := betweenClocksPattern.FindStringSubmatch(q)
	if m == nil || m[2] != "" || m[4] != "" {
		return 0, false
	}
	startExpr, endExpr := m[1], m[3]

	start, ok := ParseClock(startExpr)
	if !ok {
		return 0, false
	}
	end, ok := ParseClock(endExpr)
	if !ok {
		return 0, false
	}

	// "between 1 and 3pm": the start borrows the end's am/pm when that keeps the span in order.
	if suffix := meridiemSuffix.FindString(endExpr); suffix != "" && !meridiemSuffix.MatchString(startExpr) {
		if borrowed, ok := ParseClock(startExpr + suffix); ok && borrowed <= end {
			start = borrowed
		}
	}

	// "between noon and 6": a bare end hour earlier than an afternoon start is read as pm.
	if end < start && isAfternoonExpr(startExpr) && !meridiemSuffix.MatchString(endExpr) {
		if borrowed, ok := ParseClock(endExpr + "pm"); ok && borrowed >= start {
			end = borrowed
		}
	}

	return Overlapping(start, end), true
}

func matchKeywords(q string) (Set, bool) {
	found := scanKeywords(q)
	if found.IsEmpty() {
		return 0, false
	}
	return found, true
}

// isAfternoonExpr reports whether a clock expression is noon or carries pm.
func isAfternoonExpr(expr string) bool {
	switch expr {
	case "noon", "midday":
		return true
	}
	suffix := meridiemSuffix.FindString(expr)
	return strings.HasPrefix(suffix, "p")
}

// clockAfterKeyword extracts and parses the clock expression captured by pattern.
// A clock glued to trailing letters ("10am2", "3pmish") is rejected.
func clockAfterKeyword(pattern *regexp.Regexp, q string) (TimePoint, bool) {
	m := pattern.FindStringSubmatch(q)
	if m == nil || m[2] != "" {
		return 0, false
	}
	return ParseClock(m[1])
}

func scanKeywords(q string) Set {
	var s Set
	for _, bw := range bucketWords {
		if strings.Contains(q, bw.word) {
			s = s.With(bw.bucket)
		}
	}
	return s
}
