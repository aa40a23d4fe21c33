// Package gemini implements the Completer interface using the Google Gen AI SDK.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nadzzz/lingodesk/internal/config"
	"github.com/nadzzz/lingodesk/internal/interpreter"
)

// Completer calls Models.GenerateContent on the Gemini API.
type Completer struct {
	client *genai.Client
	model  string
}

// New creates a Gemini completer. baseURL is only set by tests.
func New(ctx context.Context, cfg config.GeminiConfig, timeout time.Duration, baseURL string) (*Completer, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Completer{client: client, model: model}, nil
}

// Name returns the backend identifier.
func (c *Completer) Name() string { return "gemini" }

// Complete generates content with the system instruction and temperature of r.
func (c *Completer) Complete(ctx context.Context, r interpreter.Request) (string, error) {
	model := r.ModelOr(c.model)

	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(r.Temperature)),
	}
	if r.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(r.System, genai.RoleUser)
	}

	content := genai.NewContentFromText(r.Prompt, genai.RoleUser)
	resp, err := c.client.Models.GenerateContent(ctx, model, []*genai.Content{content}, gc)
	if err != nil {
		return "", fmt.Errorf("generating content with gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	slog.Debug("gemini completion complete", "model", model, "length", sb.Len())
	return sb.String(), nil
}

// Close is a no-op; the SDK client holds no connections of its own.
func (c *Completer) Close() error { return nil }
