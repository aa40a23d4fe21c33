// Package cohere implements the Completer interface using Cohere's Chat API.
//
// The preamble field carries the system instruction; the message field carries
// the prompt. Cohere answers with a single "text" field.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/nadzzz/lingodesk/internal/config"
	"github.com/nadzzz/lingodesk/internal/interpreter"
)

// Completer uses the Cohere v1 chat endpoint.
type Completer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// New creates a new Cohere completer from config.
func New(cfg config.CohereConfig, timeout time.Duration) *Completer {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.cohere.ai"
	}
	return &Completer{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the backend identifier.
func (c *Completer) Name() string { return "cohere" }

// Complete sends one chat turn to Cohere.
func (c *Completer) Complete(ctx context.Context, r interpreter.Request) (string, error) {
	reqBody := chatRequest{
		Message:     r.Prompt,
		Model:       r.ModelOr(c.model),
		Temperature: r.Temperature,
		Preamble:    r.System,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling cohere request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating cohere request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cohere request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading cohere response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(data, "message").String()
		if msg == "" {
			msg = string(data[:min(len(data), 2048)])
		}
		return "", fmt.Errorf("cohere chat failed (status %d): %s", resp.StatusCode, msg)
	}

	text := gjson.GetBytes(data, "text")
	if !text.Exists() {
		return "", fmt.Errorf("cohere response has no text field")
	}

	slog.Debug("cohere completion complete", "model", reqBody.Model, "length", len(text.String()))
	return text.String(), nil
}

// Close is a no-op for the Cohere completer.
func (c *Completer) Close() error { return nil }

type chatRequest struct {
	Message     string  `json:"message"`
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature"`
	Preamble    string  `json:"preamble,omitempty"`
}
