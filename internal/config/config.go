// Package config handles loading and validating the lingodesk configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the root configuration for lingodesk.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Transports TransportsConfig `mapstructure:"transports"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Routing    RoutingConfig    `mapstructure:"routing"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds the health check server settings.
type ServerConfig struct {
	HealthPort int `mapstructure:"health_port"`
}

// TransportsConfig holds the configuration for each transport layer used by `serve`.
type TransportsConfig struct {
	GRPC GRPCConfig `mapstructure:"grpc"`
	HTTP HTTPConfig `mapstructure:"http"`
}

// GRPCConfig configures the gRPC transport.
type GRPCConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// LLMConfig selects and configures the completion backend.
type LLMConfig struct {
	Backend string        `mapstructure:"backend"` // "cohere", "openai", "gemini" or "local"
	Timeout time.Duration `mapstructure:"timeout"`
	Cohere  CohereConfig  `mapstructure:"cohere"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Local   LocalConfig   `mapstructure:"local"`
}

// CohereConfig holds Cohere chat API settings.
type CohereConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// OpenAIConfig holds OpenAI API settings.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// LocalConfig holds self-hosted LLM settings.
type LocalConfig struct {
	Endpoint string `mapstructure:"endpoint"` // /api/generate (Ollama) or /v1/chat/completions
	Model    string `mapstructure:"model"`    // e.g. "llama3.2:1b"
}

// RoutingConfig tunes the response router.
type RoutingConfig struct {
	Threshold     float64 `mapstructure:"threshold"`
	DetectModel   string  `mapstructure:"detect_model"`   // model used for language detection
	GenerateModel string  `mapstructure:"generate_model"` // model used for generative replies
}

// CatalogConfig points at an optional YAML catalog replacing the built-in one.
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
	File   string `mapstructure:"file"`   // rotating log file; empty logs to the console
}

// Load reads the configuration from .env, file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./lingodesk.yaml, ./configs/lingodesk.yaml, /etc/lingodesk/lingodesk.yaml.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	v := viper.New()

	// Defaults
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("transports.grpc.enabled", true)
	v.SetDefault("transports.grpc.port", 50051)
	v.SetDefault("transports.http.enabled", true)
	v.SetDefault("transports.http.port", 8080)
	v.SetDefault("llm.backend", "cohere")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.cohere.api_key", "${COHERE_API_KEY}")
	v.SetDefault("llm.cohere.base_url", "https://api.cohere.ai")
	v.SetDefault("llm.cohere.model", "command-r")
	v.SetDefault("llm.openai.api_key", "${OPENAI_API_KEY}")
	v.SetDefault("llm.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.openai.model", "gpt-4o-mini")
	v.SetDefault("llm.gemini.api_key", "${GEMINI_API_KEY}")
	v.SetDefault("llm.gemini.model", "gemini-2.0-flash")
	v.SetDefault("llm.local.endpoint", "http://localhost:11434/api/generate")
	v.SetDefault("llm.local.model", "llama3")
	v.SetDefault("routing.threshold", 0.15)
	v.SetDefault("routing.detect_model", "")
	v.SetDefault("routing.generate_model", "")
	v.SetDefault("catalog.file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("lingodesk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/lingodesk")
	}

	// Environment variables: LINGODESK_LLM_BACKEND, LINGODESK_ROUTING_THRESHOLD, etc.
	v.SetEnvPrefix("LINGODESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional: env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Debug("no config file found, using defaults and environment variables")
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${COHERE_API_KEY}")
	cfg.LLM.Cohere.APIKey = resolveEnvRef(cfg.LLM.Cohere.APIKey)
	cfg.LLM.OpenAI.APIKey = resolveEnvRef(cfg.LLM.OpenAI.APIKey)
	cfg.LLM.Gemini.APIKey = resolveEnvRef(cfg.LLM.Gemini.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that would otherwise only fail on the first request.
func (c *Config) Validate() error {
	var key string
	switch c.LLM.Backend {
	case "cohere":
		key = c.LLM.Cohere.APIKey
	case "openai":
		key = c.LLM.OpenAI.APIKey
	case "gemini":
		key = c.LLM.Gemini.APIKey
	case "local":
		if c.LLM.Local.Endpoint == "" {
			return fmt.Errorf("llm.local.endpoint must be set for the local backend")
		}
		key = "-"
	default:
		return fmt.Errorf("unknown llm backend %q", c.LLM.Backend)
	}
	if key == "" {
		return fmt.Errorf("no API key configured for llm backend %q (set llm.%s.api_key or its environment variable)",
			c.LLM.Backend, c.LLM.Backend)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout)
	}
	if c.Routing.Threshold < 0 || c.Routing.Threshold > 1 {
		return fmt.Errorf("routing.threshold must be within [0,1], got %v", c.Routing.Threshold)
	}
	return nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var value.
// An unset variable resolves to the empty string.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config. Console output
// goes to console; when cfg.File is set, logs go to a rotating file instead.
// The returned closer releases the file, if any.
func SetupLogging(cfg LoggingConfig, console io.Writer) io.Closer {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	out := console
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		out, closer = lj, lj
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
