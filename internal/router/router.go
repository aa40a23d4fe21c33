// Package router implements the response routing engine.
//
// The router detects the language of an utterance, matches it against the intent
// patterns, and answers with the canned reply for a confident intent or with a
// generated reply otherwise. Respond is total: whatever the remote services do,
// the caller gets displayable text.
package router

import (
	"context"
	"log/slog"
	"time"

	"github.com/nadzzz/lingodesk/internal/catalog"
	"github.com/nadzzz/lingodesk/internal/fallback"
	"github.com/nadzzz/lingodesk/internal/intent"
	"github.com/nadzzz/lingodesk/internal/language"
	"github.com/nadzzz/lingodesk/internal/message"
)

// Detector guesses the language code of text. It must not fail.
type Detector interface {
	Detect(ctx context.Context, text string) string
}

// Generator produces a free-text reply. ok is false when the text is an apology.
type Generator interface {
	Generate(ctx context.Context, text, lang string) (reply string, ok bool)
}

// Router is the central routing engine.
type Router struct {
	catalog   *catalog.Catalog
	matcher   *intent.Matcher
	detector  Detector
	generator Generator
}

// New creates a Router over the given catalog and collaborators.
func New(c *catalog.Catalog, m *intent.Matcher, d Detector, g Generator) *Router {
	return &Router{catalog: c, matcher: m, detector: d, generator: g}
}

// Respond returns the reply text for one utterance.
func (r *Router) Respond(ctx context.Context, text string) string {
	return r.Resolve(ctx, text).Text
}

// Resolve routes one utterance and reports how the reply was chosen.
func (r *Router) Resolve(ctx context.Context, text string) (reply message.Reply) {
	start := time.Now()
	lang := language.DefaultCode

	defer func() {
		if p := recover(); p != nil {
			slog.Error("routing panicked, returning apology", "panic", p)
			reply = message.Reply{Text: fallback.Apology(lang), Language: lang, Source: message.SourceApology}
		}
	}()

	if detected := r.detector.Detect(ctx, text); detected != "" {
		lang = detected
	}
	match := r.matcher.Match(text)
	reply = message.Reply{Language: lang, Intent: string(match.Intent), Confidence: match.Confidence}

	if match.Matched() && match.Confidence > r.matcher.Threshold() {
		if preset, ok := r.catalog.Reply(match.Intent, lang); ok {
			if !r.catalog.HasLanguage(match.Intent, lang) {
				reply.Language = catalog.DefaultLanguage
			}
			reply.Text = preset
			reply.Source = message.SourcePreset
			slog.Debug("routed to preset", "intent", match.Intent, "confidence", match.Confidence,
				"language", reply.Language, "duration", time.Since(start))
			return reply
		}
	}

	// Below the threshold only the score is kept.
	reply.Intent = ""
	generated, ok := r.generator.Generate(ctx, text, lang)
	reply.Text = generated
	reply.Source = message.SourceGenerated
	if !ok {
		reply.Source = message.SourceApology
	}
	slog.Debug("routed to fallback", "language", lang, "source", reply.Source, "duration", time.Since(start))
	return reply
}

// Handle adapts the router to transport handlers.
func (r *Router) Handle(ctx context.Context, u *message.Utterance) (*message.Reply, error) {
	logger := slog.With("utterance_id", u.ID, "source", u.Source)
	reply := r.Resolve(ctx, u.Text)
	reply.UtteranceID = u.ID
	logger.Info("utterance routed", "intent", reply.Intent, "language", reply.Language, "reply_source", reply.Source)
	return &reply, nil
}
