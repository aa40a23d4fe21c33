// Package interpreter defines the interface for remote text completion.
//
// Both remote services the support bot relies on, language detection and
// generative replies, are a single completion call with a different prompt and
// temperature. lingodesk ships with four backends: Cohere, OpenAI, Gemini and
// Local (Ollama or any OpenAI-compatible server).
package interpreter

import "context"

// Request is one completion call.
type Request struct {
	// Model overrides the backend's configured model when non-empty.
	Model string

	// System is the persona or system instruction. May be empty.
	System string

	// Prompt is the user-side payload.
	Prompt string

	// Temperature controls sampling randomness; 0 is deterministic.
	Temperature float64
}

// Completer is the interface every completion backend implements.
type Completer interface {
	// Name returns the backend identifier (e.g., "cohere", "openai").
	Name() string

	// Complete sends one request and returns the generated text.
	Complete(ctx context.Context, req Request) (string, error)

	// Close releases any resources held by the backend.
	Close() error
}

// ModelOr returns req.Model, or fallback when the request does not name one.
func (r Request) ModelOr(fallback string) string {
	if r.Model != "" {
		return r.Model
	}
	return fallback
}
