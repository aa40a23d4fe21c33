package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsConsistent(t *testing.T) {
	c := Default()

	assert.Equal(t, []Intent{Greeting, BusinessHours, ReturnPolicy, ContactSupport, Goodbye}, c.Intents())
	for _, intent := range c.Intents() {
		assert.NotNil(t, c.Pattern(intent), "pattern for %s", intent)
		assert.True(t, c.HasLanguage(intent, DefaultLanguage), "english reply for %s", intent)
	}
}

func TestReply_FallsBackToEnglish(t *testing.T) {
	c := Default()

	es, ok := c.Reply(Goodbye, "es")
	require.True(t, ok)
	assert.Equal(t, "Gracias por chatear con nosotros hoy. ¿Hay algo más en lo que pueda ayudarte?", es)

	xx, ok := c.Reply(ReturnPolicy, "xx")
	require.True(t, ok)
	assert.Equal(t, "You can return products within 30 days of purchase with the original receipt for a full refund.", xx)

	_, ok = c.Reply(Intent("weather"), "en")
	assert.False(t, ok)
}

func TestIntents_ReturnsCopy(t *testing.T) {
	c := Default()
	intents := c.Intents()
	intents[0] = "mutated"
	assert.Equal(t, Greeting, c.Intents()[0])
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		patterns PatternTable
		presets  Presets
	}{
		{
			name:     "no intents",
			patterns: nil,
			presets:  Presets{},
		},
		{
			name:     "pattern without presets",
			patterns: PatternTable{{"a", "a"}, {"b", "b"}},
			presets:  Presets{"a": {"en": "A"}},
		},
		{
			name:     "presets without pattern",
			patterns: PatternTable{{"a", "a"}},
			presets:  Presets{"a": {"en": "A"}, "b": {"en": "B"}},
		},
		{
			name:     "missing english",
			patterns: PatternTable{{"a", "a"}},
			presets:  Presets{"a": {"fr": "A"}},
		},
		{
			name:     "bad language key",
			patterns: PatternTable{{"a", "a"}},
			presets:  Presets{"a": {"en": "A", "ENG": "A"}},
		},
		{
			name:     "empty reply",
			patterns: PatternTable{{"a", "a"}},
			presets:  Presets{"a": {"en": ""}},
		},
		{
			name:     "duplicate pattern",
			patterns: PatternTable{{"a", "a"}, {"a", "b"}},
			presets:  Presets{"a": {"en": "A"}},
		},
		{
			name:     "empty pattern",
			patterns: PatternTable{{"a", ""}},
			presets:  Presets{"a": {"en": "A"}},
		},
		{
			name:     "pattern does not compile",
			patterns: PatternTable{{"a", "(unclosed"}},
			presets:  Presets{"a": {"en": "A"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.patterns, tt.presets)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestNew_CopiesPresets(t *testing.T) {
	presets := Presets{"a": {"en": "A"}}
	c, err := New(PatternTable{{"a", "a"}}, presets)
	require.NoError(t, err)

	presets["a"]["en"] = "changed"
	text, _ := c.Reply("a", "en")
	assert.Equal(t, "A", text)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
intents:
  - name: shipping
    pattern: '\b(ship|delivery)\b'
    replies:
      en: "We ship within two business days."
      de: "Wir versenden innerhalb von zwei Werktagen."
  - name: greeting
    pattern: '\bhello\b'
    replies:
      en: "Hi there!"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Intent{"shipping", "greeting"}, c.Intents())

	text, ok := c.Reply("shipping", "de")
	require.True(t, ok)
	assert.Equal(t, "Wir versenden innerhalb von zwei Werktagen.", text)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Parse([]byte("intents:\n  - name: a\n    pattern: a\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("intents: [unterminated"))
	assert.ErrorIs(t, err, ErrInvalid)
}
