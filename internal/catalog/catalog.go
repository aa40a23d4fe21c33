// Package catalog holds the intent pattern table and the multilingual preset replies.
//
// Both tables are built once at startup. A Catalog is immutable after New returns,
// so it can be shared by reference between the matcher, the router and any number
// of transports without locking.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used whenever a reply is missing for the requested language.
const DefaultLanguage = "en"

// matchTimeout bounds a single regexp2 evaluation; catalog files are user supplied.
const matchTimeout = 250 * time.Millisecond

// Intent is a recognized category of customer inquiry.
type Intent string

const (
	Greeting       Intent = "greeting"
	BusinessHours  Intent = "business_hours"
	ReturnPolicy   Intent = "return_policy"
	ContactSupport Intent = "contact_support"
	Goodbye        Intent = "goodbye"
)

// PatternEntry binds one intent to the expression that detects it.
type PatternEntry struct {
	Intent Intent
	Expr   string
}

// PatternTable is ordered: the order is the tie-break order of the matcher.
type PatternTable []PatternEntry

// Presets maps an intent to its replies keyed by ISO-639-1 code.
type Presets map[Intent]map[string]string

// Catalog is the validated, compiled pair of tables.
type Catalog struct {
	order    []Intent
	patterns map[Intent]*regexp2.Regexp
	presets  Presets
}

// ErrInvalid is wrapped by every validation failure returned from New and Load.
var ErrInvalid = errors.New("invalid catalog")

// New validates the tables and compiles the patterns. It fails when the intents of
// the two tables differ, when an intent lacks an English reply, or when a pattern
// does not compile.
func New(patterns PatternTable, presets Presets) (*Catalog, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no intents defined", ErrInvalid)
	}

	c := &Catalog{
		order:    make([]Intent, 0, len(patterns)),
		patterns: make(map[Intent]*regexp2.Regexp, len(patterns)),
		presets:  make(Presets, len(presets)),
	}

	for _, p := range patterns {
		if p.Intent == "" {
			return nil, fmt.Errorf("%w: pattern with empty intent", ErrInvalid)
		}
		if _, dup := c.patterns[p.Intent]; dup {
			return nil, fmt.Errorf("%w: duplicate pattern for intent %q", ErrInvalid, p.Intent)
		}
		if p.Expr == "" {
			return nil, fmt.Errorf("%w: empty pattern for intent %q", ErrInvalid, p.Intent)
		}
		re, err := regexp2.Compile(p.Expr, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("%w: compiling pattern for intent %q: %v", ErrInvalid, p.Intent, err)
		}
		re.MatchTimeout = matchTimeout
		if _, ok := presets[p.Intent]; !ok {
			return nil, fmt.Errorf("%w: intent %q has a pattern but no preset replies", ErrInvalid, p.Intent)
		}
		c.order = append(c.order, p.Intent)
		c.patterns[p.Intent] = re
	}

	for intent, replies := range presets {
		if _, ok := c.patterns[intent]; !ok {
			return nil, fmt.Errorf("%w: intent %q has preset replies but no pattern", ErrInvalid, intent)
		}
		if _, ok := replies[DefaultLanguage]; !ok {
			return nil, fmt.Errorf("%w: intent %q has no %q reply", ErrInvalid, intent, DefaultLanguage)
		}
		copied := make(map[string]string, len(replies))
		for lang, text := range replies {
			if !validLanguage(lang) {
				return nil, fmt.Errorf("%w: intent %q: language key %q is not a two-letter lowercase code", ErrInvalid, intent, lang)
			}
			if text == "" {
				return nil, fmt.Errorf("%w: intent %q: empty %q reply", ErrInvalid, intent, lang)
			}
			copied[lang] = text
		}
		c.presets[intent] = copied
	}

	return c, nil
}

// Intents returns the intents in matcher order.
func (c *Catalog) Intents() []Intent {
	out := make([]Intent, len(c.order))
	copy(out, c.order)
	return out
}

// Pattern returns the compiled expression for intent, or nil if unknown.
func (c *Catalog) Pattern(intent Intent) *regexp2.Regexp {
	return c.patterns[intent]
}

// Reply returns the preset for intent in lang, falling back to English.
// The boolean is false only for an unknown intent.
func (c *Catalog) Reply(intent Intent, lang string) (string, bool) {
	replies, ok := c.presets[intent]
	if !ok {
		return "", false
	}
	if text, ok := replies[lang]; ok {
		return text, true
	}
	text, ok := replies[DefaultLanguage]
	return text, ok
}

// HasLanguage reports whether intent carries a reply written in lang.
func (c *Catalog) HasLanguage(intent Intent, lang string) bool {
	_, ok := c.presets[intent][lang]
	return ok
}

// fileFormat is the on-disk YAML layout read by Load.
type fileFormat struct {
	Intents []struct {
		Name    string            `yaml:"name"`
		Pattern string            `yaml:"pattern"`
		Replies map[string]string `yaml:"replies"`
	} `yaml:"intents"`
}

// Load reads a catalog from a YAML file. Intent order is file order.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes in the Load format.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %v", ErrInvalid, err)
	}

	patterns := make(PatternTable, 0, len(f.Intents))
	presets := make(Presets, len(f.Intents))
	for _, entry := range f.Intents {
		intent := Intent(entry.Name)
		patterns = append(patterns, PatternEntry{Intent: intent, Expr: entry.Pattern})
		if entry.Replies != nil {
			presets[intent] = entry.Replies
		}
	}
	return New(patterns, presets)
}

func validLanguage(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if code[i] < 'a' || code[i] > 'z' {
			return false
		}
	}
	return true
}
