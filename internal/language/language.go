// Package language guesses the ISO-639-1 code of customer text with one
// deterministic completion call.
//
// The guess is best effort. Detect always returns some valid two-letter code,
// falling back to DefaultCode on any failure.
package language

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/language"

	"github.com/nadzzz/lingodesk/internal/interpreter"
)

// DefaultCode is returned when detection fails.
const DefaultCode = "en"

const promptTemplate = "Detect the language of the following text and respond only with the ISO 639-1 " +
	"two-letter language code (e.g., 'en' for English, 'es' for Spanish, etc.): %q"

var codePattern = regexp2.MustCompile(`\b([a-z]{2})\b`, regexp2.None)

// Identifier detects languages through a Completer.
type Identifier struct {
	completer interpreter.Completer
	model     string
}

// New creates an Identifier. model may be empty to use the backend default.
func New(c interpreter.Completer, model string) *Identifier {
	return &Identifier{completer: c, model: model}
}

// Detect returns the dominant language of text, or DefaultCode.
func (id *Identifier) Detect(ctx context.Context, text string) string {
	reply, err := id.completer.Complete(ctx, interpreter.Request{
		Model:       id.model,
		Prompt:      fmt.Sprintf(promptTemplate, text),
		Temperature: 0,
	})
	if err != nil {
		slog.Warn("language detection failed, using default", "default", DefaultCode, "error", err)
		return DefaultCode
	}

	code, ok := ParseCode(reply)
	if !ok {
		slog.Debug("no language code in detection reply", "reply", truncate(reply, 80))
		return DefaultCode
	}
	return code
}

// ParseCode extracts the first standalone two-letter token of reply and checks that
// it names an ISO 639 language.
func ParseCode(reply string) (string, bool) {
	m, err := codePattern.FindStringMatch(strings.ToLower(strings.TrimSpace(reply)))
	if err != nil || m == nil {
		return "", false
	}
	code := m.GroupByNumber(1).String()
	if _, err := language.ParseBase(code); err != nil {
		return "", false
	}
	return code, true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
