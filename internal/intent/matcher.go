// Package intent scores customer text against the catalog's intent patterns.
package intent

import (
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/nadzzz/lingodesk/internal/catalog"
)

// DefaultThreshold is the minimum score for a confident match.
const DefaultThreshold = 0.15

// Result is the outcome of matching one utterance. Intent is empty for no match.
type Result struct {
	Intent     catalog.Intent
	Confidence float64
}

// Matched reports whether an intent was found.
func (r Result) Matched() bool { return r.Intent != "" }

// Matcher is a keyword heuristic: matches per intent over the utterance word count.
type Matcher struct {
	catalog   *catalog.Catalog
	threshold float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(t float64) Option {
	return func(m *Matcher) { m.threshold = t }
}

// NewMatcher creates a matcher over the intents of c.
func NewMatcher(c *catalog.Catalog, opts ...Option) *Matcher {
	m := &Matcher{catalog: c, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Threshold returns the configured confidence threshold.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Match returns the best scoring intent, or an empty Result when the best score is
// below the threshold. Ties keep the intent that comes first in catalog order.
func (m *Matcher) Match(text string) Result {
	lower := strings.ToLower(text)
	words := len(strings.Fields(lower))
	if words < 1 {
		words = 1
	}

	var best catalog.Intent
	var highest float64
	for _, in := range m.catalog.Intents() {
		n := countMatches(m.catalog.Pattern(in), lower)
		if n == 0 {
			continue
		}
		score := float64(n) / float64(words)
		if score > highest {
			best, highest = in, score
		}
	}

	if best == "" || highest < m.threshold {
		return Result{}
	}
	if highest > 1 {
		highest = 1
	}
	return Result{Intent: best, Confidence: highest}
}

// countMatches counts non-overlapping matches. A match timeout ends the count early.
func countMatches(re *regexp2.Regexp, text string) int {
	if re == nil {
		return 0
	}
	n := 0
	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		n++
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		slog.Warn("intent pattern evaluation aborted", "error", err, "matches", n)
	}
	return n
}
