// Package openai implements the Completer interface using OpenAI's Chat Completions API.
package openai

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

// Completer uses the OpenAI Chat Completions API.
type Completer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// New creates a new OpenAI completer from config.
func New(cfg config.OpenAIConfig, timeout time.Duration) *Completer {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Completer{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the backend identifier.
func (c *Completer) Name() string { return "openai" }

// Complete sends the system instruction and prompt to the Chat Completions API.
func (c *Completer) Complete(ctx context.Context, r interpreter.Request) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if r.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: r.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: r.Prompt})

	reqBody := chatRequest{
		Model:       r.ModelOr(c.model),
		Messages:    messages,
		Temperature: r.Temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("chat failed (status %d): %s", resp.StatusCode, respBody)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat response: %w", err)
	}

	content := gjson.GetBytes(data, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("no choices returned from chat API")
	}

	slog.Debug("openai completion complete", "model", reqBody.Model, "length", len(content.String()))
	return content.String(), nil
}

// Close is a no-op for the OpenAI completer.
func (c *Completer) Close() error { return nil }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
