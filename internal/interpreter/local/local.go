// Package local implements the Completer interface using self-hosted models.
//
// It supports Ollama's /api/generate endpoint and any OpenAI-compatible chat
// endpoint (e.g., Ollama's /v1/chat/completions, vLLM, llama.cpp server).
package local

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

// Completer uses a self-hosted LLM endpoint.
type Completer struct {
	endpoint string
	model    string
	client   *http.Client
}

// New creates a new local completer from config.
func New(cfg config.LocalConfig, timeout time.Duration) *Completer {
	model := cfg.Model
	if model == "" {
		model = "llama3"
	}
	return &Completer{
		endpoint: cfg.Endpoint,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

// Name returns the backend identifier.
func (c *Completer) Name() string { return "local" }

// Complete sends the request to the local LLM endpoint. An endpoint ending in
// /api/generate gets the Ollama body; anything else gets a chat completions body.
func (c *Completer) Complete(ctx context.Context, r interpreter.Request) (string, error) {
	model := r.ModelOr(c.model)

	var reqBody map[string]any
	if strings.HasSuffix(c.endpoint, "/api/generate") {
		reqBody = map[string]any{
			"model":   model,
			"prompt":  r.Prompt,
			"stream":  false,
			"options": map[string]any{"temperature": r.Temperature},
		}
		if r.System != "" {
			reqBody["system"] = r.System
		}
	} else {
		messages := make([]map[string]string, 0, 2)
		if r.System != "" {
			messages = append(messages, map[string]string{"role": "system", "content": r.System})
		}
		messages = append(messages, map[string]string{"role": "user", "content": r.Prompt})
		reqBody = map[string]any{
			"model":       model,
			"messages":    messages,
			"temperature": r.Temperature,
			"stream":      false,
		}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("local LLM request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("local LLM failed (status %d): %s", resp.StatusCode, respBody)
	}

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading LLM response: %w", err)
	}

	content := extractContent(respData)
	if content == "" {
		return "", fmt.Errorf("empty response from local LLM")
	}

	slog.Debug("local completion complete", "model", model, "length", len(content))
	return content, nil
}

// Close is a no-op for the local completer.
func (c *Completer) Close() error { return nil }

// extractContent understands {"choices":[{"message":{"content":...}}]} and
// Ollama's {"response": ...}. Anything else is returned as raw text.
func extractContent(data []byte) string {
	if !gjson.ValidBytes(data) {
		return strings.TrimSpace(string(data))
	}
	if v := gjson.GetBytes(data, "choices.0.message.content"); v.Exists() {
		return v.String()
	}
	if v := gjson.GetBytes(data, "response"); v.Exists() {
		return v.String()
	}
	return ""
}
