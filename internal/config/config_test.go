package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "co-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "cohere", cfg.LLM.Backend)
	assert.Equal(t, "co-key", cfg.LLM.Cohere.APIKey)
	assert.Equal(t, "https://api.cohere.ai", cfg.LLM.Cohere.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0.15, cfg.Routing.Threshold)
	assert.Equal(t, 8080, cfg.Transports.HTTP.Port)
	assert.Equal(t, 50051, cfg.Transports.GRPC.Port)
	assert.Equal(t, 8081, cfg.Server.HealthPort)
	assert.Empty(t, cfg.Catalog.File)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key")
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingodesk.yaml")
	data := `
llm:
  backend: openai
  timeout: 5s
  openai:
    api_key: ${TEST_LINGODESK_OPENAI}
    model: gpt-4o
routing:
  threshold: 0.3
  generate_model: gpt-4o
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("TEST_LINGODESK_OPENAI", "sk-test")
	t.Setenv("LINGODESK_TRANSPORTS_HTTP_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Backend)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0.3, cfg.Routing.Threshold)
	assert.Equal(t, "gpt-4o", cfg.Routing.GenerateModel)
	assert.Equal(t, 9090, cfg.Transports.HTTP.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [oops"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			LLM: LLMConfig{
				Backend: "local",
				Timeout: time.Second,
				Local:   LocalConfig{Endpoint: "http://localhost:11434/api/generate"},
			},
			Routing: RoutingConfig{Threshold: 0.15},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "local needs no key", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.LLM.Backend = "cobol" }, wantErr: "unknown llm backend"},
		{name: "local without endpoint", mutate: func(c *Config) { c.LLM.Local.Endpoint = "" }, wantErr: "llm.local.endpoint"},
		{name: "gemini without key", mutate: func(c *Config) { c.LLM.Backend = "gemini" }, wantErr: "no API key"},
		{name: "zero timeout", mutate: func(c *Config) { c.LLM.Timeout = 0 }, wantErr: "llm.timeout"},
		{name: "threshold above one", mutate: func(c *Config) { c.Routing.Threshold = 1.5 }, wantErr: "routing.threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveEnvRef(t *testing.T) {
	t.Setenv("TEST_LINGODESK_REF", "value")

	assert.Equal(t, "value", resolveEnvRef("${TEST_LINGODESK_REF}"))
	assert.Equal(t, "", resolveEnvRef("${TEST_LINGODESK_UNSET}"))
	assert.Equal(t, "literal", resolveEnvRef("literal"))
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	closer := SetupLogging(LoggingConfig{Level: "warn", Format: "json"}, &buf)
	defer closer.Close()

	slog.Info("hidden")
	slog.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestSetupLogging_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "lingodesk.log")
	var console bytes.Buffer
	closer := SetupLogging(LoggingConfig{Level: "info", File: path}, &console)

	slog.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, console.String())
}
