package intent

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/lingodesk/internal/catalog"
)

func TestMatch_Scenarios(t *testing.T) {
	m := NewMatcher(catalog.Default())

	tests := []struct {
		name       string
		text       string
		wantIntent catalog.Intent
		wantScore  float64
	}{
		{
			name:       "greeting and hours tie, greeting comes first",
			text:       "Hello, what are your business hours?",
			wantIntent: catalog.Greeting,
			wantScore:  1.0 / 6.0,
		},
		{
			name:       "spanish thanks",
			text:       "gracias",
			wantIntent: catalog.Goodbye,
			wantScore:  1.0,
		},
		{
			name:       "refund request",
			text:       "I want a refund",
			wantIntent: catalog.ReturnPolicy,
			wantScore:  0.25,
		},
		{
			name:       "case insensitive",
			text:       "HOURS?",
			wantIntent: catalog.BusinessHours,
			wantScore:  1.0,
		},
		{
			name:       "japanese greeting",
			text:       "こんにちは",
			wantIntent: catalog.Greeting,
			wantScore:  1.0,
		},
		{
			name:       "russian contact",
			text:       "дайте контакт",
			wantIntent: catalog.ContactSupport,
			wantScore:  0.5,
		},
		{
			name:       "word boundary keeps hi out of this",
			text:       "this thing",
			wantIntent: "",
			wantScore:  0,
		},
		{
			name:       "gibberish",
			text:       "asdkjaslkdj random gibberish",
			wantIntent: "",
			wantScore:  0,
		},
		{
			name:       "empty",
			text:       "",
			wantIntent: "",
			wantScore:  0,
		},
		{
			name:       "below threshold",
			text:       "could you tell me what the weather will be like tomorrow and also about a refund",
			wantIntent: "",
			wantScore:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.text)
			assert.Equal(t, tt.wantIntent, got.Intent)
			assert.InDelta(t, tt.wantScore, got.Confidence, 1e-9)
		})
	}
}

func TestMatch_HigherRatioWins(t *testing.T) {
	m := NewMatcher(catalog.Default())

	// Two return keywords outscore one greeting keyword.
	got := m.Match("hi, refund or exchange")
	assert.Equal(t, catalog.ReturnPolicy, got.Intent)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9)
}

func TestMatch_ConfidenceClampedToOne(t *testing.T) {
	m := NewMatcher(catalog.Default())

	got := m.Match("hourshourshours")
	assert.Equal(t, catalog.BusinessHours, got.Intent)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestMatch_TieBreakFollowsTableOrder(t *testing.T) {
	presets := catalog.Presets{"alpha": {"en": "A"}, "beta": {"en": "B"}}

	ab, err := catalog.New(catalog.PatternTable{{Intent: "alpha", Expr: "x"}, {Intent: "beta", Expr: "y"}}, presets)
	require.NoError(t, err)
	ba, err := catalog.New(catalog.PatternTable{{Intent: "beta", Expr: "y"}, {Intent: "alpha", Expr: "x"}}, presets)
	require.NoError(t, err)

	assert.Equal(t, catalog.Intent("alpha"), NewMatcher(ab).Match("x y").Intent)
	assert.Equal(t, catalog.Intent("beta"), NewMatcher(ba).Match("x y").Intent)
}

func TestWithThreshold(t *testing.T) {
	m := NewMatcher(catalog.Default(), WithThreshold(0.5))
	assert.Equal(t, 0.5, m.Threshold())

	assert.False(t, m.Match("I want a refund").Matched())
	assert.True(t, m.Match("refund please").Matched())
}

func TestProperty_Matcher(t *testing.T) {
	m := NewMatcher(catalog.Default())
	properties := gopter.NewProperties(nil)

	properties.Property("confidence stays within [0,1]", prop.ForAll(
		func(text string) bool {
			r := m.Match(text)
			return r.Confidence >= 0 && r.Confidence <= 1
		},
		gen.AnyString(),
	))

	properties.Property("no pattern match yields none with zero confidence", prop.ForAll(
		func(text string) bool {
			r := m.Match(text)
			return r.Intent == "" && r.Confidence == 0
		},
		gen.RegexMatch(`[xzq0-9 ]{0,40}`),
	))

	properties.Property("a match is always at or above the threshold", prop.ForAll(
		func(text string) bool {
			r := m.Match(text)
			return !r.Matched() || r.Confidence >= DefaultThreshold
		},
		gen.OneGenOf(gen.AnyString(), gen.RegexMatch(`(hello|refund|hours|thanks|[a-z]{1,6})( [a-z]{1,6}){0,8}`)),
	))

	properties.TestingRun(t)
}
