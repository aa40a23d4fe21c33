package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/lingodesk/internal/config"
	"github.com/nadzzz/lingodesk/internal/interpreter"
)

func TestComplete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Bonjour"}}]}`))
	}))
	defer srv.Close()

	c := New(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini"}, time.Second)
	out, err := c.Complete(context.Background(), interpreter.Request{System: "persona", Prompt: "salut", Temperature: 0.7})
	require.NoError(t, err)

	assert.Equal(t, "Bonjour", out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, []chatMessage{{Role: "system", Content: "persona"}, {Role: "user", Content: "salut"}}, got.Messages)
}

func TestComplete_NoSystemMessage(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"en"}}]}`))
	}))
	defer srv.Close()

	c := New(config.OpenAIConfig{APIKey: "k", BaseURL: srv.URL}, time.Second)
	_, err := c.Complete(context.Background(), interpreter.Request{Model: "gpt-4o", Prompt: "detect"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, []chatMessage{{Role: "user", Content: "detect"}}, got.Messages)
}

func TestComplete_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"boom"}}`, wantErr: "status 500"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: "no choices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(config.OpenAIConfig{APIKey: "k", BaseURL: srv.URL}, time.Second)
			_, err := c.Complete(context.Background(), interpreter.Request{Prompt: "hi"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
