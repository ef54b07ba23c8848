package timerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		want     Set
		wantRule string
	}{
		{
			name:     "after lunch time",
			query:    "All flights leaving Australia after lunch time",
			want:     NewSet(Afternoon, Evening, Night),
			wantRule: "after-lunch",
		},
		{
			name:     "after noon phrase",
			query:    "flights after noon to MNL",
			want:     NewSet(Afternoon, Evening, Night),
			wantRule: "after-lunch",
		},
		{
			name:     "late night",
			query:    "late night flights to Manila",
			want:     NewSet(Night),
			wantRule: "late-night",
		},
		{
			name:     "late-night hyphenated",
			query:    "Late-night departures from SYD",
			want:     NewSet(Night),
			wantRule: "late-night",
		},
		{
			name:     "overnight",
			query:    "overnight to LAX",
			want:     NewSet(Night),
			wantRule: "late-night",
		},
		{
			name:     "single morning",
			query:    "Morning flights from Brisbane",
			want:     NewSet(Morning),
			wantRule: "single-period",
		},
		{
			name:     "single period beats clock phrase",
			query:    "evening flights after 3pm",
			want:     NewSet(Evening),
			wantRule: "single-period",
		},
		{
			name:     "any flights",
			query:    "any flights tomorrow",
			want:     0,
			wantRule: "no-preference",
		},
		{
			name:     "all day",
			query:    "flights all day on the 9th",
			want:     0,
			wantRule: "no-preference",
		},
		{
			name:     "after clock",
			query:    "flights after 1pm",
			want:     NewSet(Afternoon, Evening, Night),
			wantRule: "after-time",
		},
		{
			name:     "after 24 hour clock",
			query:    "departing after 19:30",
			want:     NewSet(Evening, Night),
			wantRule: "after-time",
		},
		{
			name:     "after midnight",
			query:    "leaving after midnight",
			want:     NewSet(Night),
			wantRule: "after-time",
		},
		{
			name:     "before clock",
			query:    "flights before 6pm",
			want:     NewSet(Morning, Afternoon),
			wantRule: "before-time",
		},
		{
			name:     "before morning clock is empty",
			query:    "before 9am please",
			want:     0,
			wantRule: "before-time",
		},
		{
			name:     "between 24 hour clocks",
			query:    "between 15:00 and 23:00",
			want:     NewSet(Afternoon, Evening),
			wantRule: "between-times",
		},
		{
			name:     "between with dash",
			query:    "flights between 8am-10am",
			want:     NewSet(Morning),
			wantRule: "between-times",
		},
		{
			name:     "between crossing midnight",
			query:    "between 10pm and 2am",
			want:     NewSet(Evening, Night),
			wantRule: "between-times",
		},
		{
			name:     "between borrows meridiem",
			query:    "between 1 and 3pm",
			want:     NewSet(Afternoon),
			wantRule: "between-times",
		},
		{
			name:     "malformed after falls through",
			query:    "after 25pm",
			want:     0,
			wantRule: RuleNone,
		},
		{
			name:     "malformed between falls through to keywords",
			query:    "between 99:00 and 5pm tonight",
			want:     NewSet(Night),
			wantRule: "keyword-scan",
		},
		{
			name:     "clock followed by a word starting with am",
			query:    "flights after 3 amsterdam",
			want:     NewSet(Night),
			wantRule: "after-time",
		},
		{
			name:     "morning clock followed by a word starting with am",
			query:    "after 10 amsterdam",
			want:     NewSet(Morning, Afternoon, Evening, Night),
			wantRule: "after-time",
		},
		{
			name:     "before clock followed by a word starting with pm",
			query:    "before 9 pmi terminal",
			want:     0,
			wantRule: "before-time",
		},
		{
			name:     "clock glued to letters falls through",
			query:    "after 3pmish",
			want:     0,
			wantRule: RuleNone,
		},
		{
			name:     "between noon and a bare end hour",
			query:    "between noon and 6",
			want:     NewSet(Afternoon),
			wantRule: "between-times",
		},
		{
			name:     "between pm start lends pm to the end",
			query:    "between 7pm and 10",
			want:     NewSet(Evening),
			wantRule: "between-times",
		},
		{
			name:     "between bare end already after start is kept",
			query:    "between 1pm and 15:00",
			want:     NewSet(Afternoon),
			wantRule: "between-times",
		},
		{
			name:     "several bucket words",
			query:    "morning or evening flights",
			want:     NewSet(Morning, Evening),
			wantRule: "keyword-scan",
		},
		{
			name:     "night keyword",
			query:    "flights tonight",
			want:     NewSet(Night),
			wantRule: "keyword-scan",
		},
		{
			name:     "nothing matched",
			query:    "Show me flights from Brisbane to Manila on October 9",
			want:     0,
			wantRule: RuleNone,
		},
		{
			name:     "empty query",
			query:    "   ",
			want:     0,
			wantRule: RuleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := ExplainQuery(tt.query)
			assert.Equal(t, tt.want, got, "buckets %s", got)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, got, ParseQuery(tt.query))
		})
	}
}

func TestFallbackRuleNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range fallbackRules {
		assert.False(t, seen[rule.name], "duplicate rule %s", rule.name)
		assert.NotEqual(t, RuleNone, rule.name)
		seen[rule.name] = true
	}
}
