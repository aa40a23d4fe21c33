// Package message defines the core data types flowing through the lingodesk pipeline.
package message

import "time"

// ReplySource records which path of the router produced a reply.
type ReplySource string

const (
	// SourcePreset marks a canned, pre-translated reply from the catalog.
	SourcePreset ReplySource = "preset"

	// SourceGenerated marks free text produced by the generative fallback.
	SourceGenerated ReplySource = "generated"

	// SourceApology marks the localized apology returned when generation failed.
	SourceApology ReplySource = "apology"
)

// Utterance is one customer message arriving from any transport.
type Utterance struct {
	// ID is a unique identifier for this utterance (UUID).
	ID string `json:"id,omitempty"`

	// Source identifies the sender (e.g., "terminal", "web-widget").
	Source string `json:"source,omitempty"`

	// Text is the raw customer input.
	Text string `json:"text"`

	// Timestamp is when the utterance was received.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Reply is the outcome of routing a single utterance.
type Reply struct {
	// UtteranceID echoes Utterance.ID.
	UtteranceID string `json:"utterance_id,omitempty"`

	// Text is the displayable reply. It is never empty.
	Text string `json:"text"`

	// Language is the ISO-639-1 code the reply was selected for.
	Language string `json:"language"`

	// Intent is the matched intent key, empty when no intent was confident.
	Intent string `json:"intent,omitempty"`

	// Confidence is the intent score in [0,1].
	Confidence float64 `json:"confidence"`

	// Source tells whether the text came from the catalog or the model.
	Source ReplySource `json:"source"`
}
