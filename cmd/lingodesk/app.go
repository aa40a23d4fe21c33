package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nadzzz/lingodesk/internal/catalog"
	"github.com/nadzzz/lingodesk/internal/config"
	"github.com/nadzzz/lingodesk/internal/fallback"
	"github.com/nadzzz/lingodesk/internal/intent"
	"github.com/nadzzz/lingodesk/internal/interpreter"
	cohereinterp "github.com/nadzzz/lingodesk/internal/interpreter/cohere"
	geminiinterp "github.com/nadzzz/lingodesk/internal/interpreter/gemini"
	localinterp "github.com/nadzzz/lingodesk/internal/interpreter/local"
	openaiinterp "github.com/nadzzz/lingodesk/internal/interpreter/openai"
	"github.com/nadzzz/lingodesk/internal/language"
	"github.com/nadzzz/lingodesk/internal/router"
)

// app is the wired routing core shared by chat and serve.
type app struct {
	completer interpreter.Completer
	catalog   *catalog.Catalog
	router    *router.Router
}

func (a *app) Close() error { return a.completer.Close() }

func build(ctx context.Context, cfg *config.Config) (*app, error) {
	c, err := newCompleter(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if cfg.Catalog.File != "" {
		if cat, err = catalog.Load(cfg.Catalog.File); err != nil {
			_ = c.Close()
			return nil, err
		}
		slog.Info("loaded reply catalog", "path", cfg.Catalog.File, "intents", len(cat.Intents()))
	}

	m := intent.NewMatcher(cat, intent.WithThreshold(cfg.Routing.Threshold))
	r := router.New(cat, m,
		language.New(c, cfg.Routing.DetectModel),
		fallback.New(c, cfg.Routing.GenerateModel))

	return &app{completer: c, catalog: cat, router: r}, nil
}

// newCompleter initializes the configured completion backend.
func newCompleter(ctx context.Context, cfg config.LLMConfig) (interpreter.Completer, error) {
	switch cfg.Backend {
	case "cohere":
		slog.Debug("using Cohere backend", "model", cfg.Cohere.Model)
		return cohereinterp.New(cfg.Cohere, cfg.Timeout), nil
	case "openai":
		slog.Debug("using OpenAI backend", "model", cfg.OpenAI.Model)
		return openaiinterp.New(cfg.OpenAI, cfg.Timeout), nil
	case "gemini":
		slog.Debug("using Gemini backend", "model", cfg.Gemini.Model)
		return geminiinterp.New(ctx, cfg.Gemini, cfg.Timeout, "")
	case "local":
		slog.Debug("using local backend", "endpoint", cfg.Local.Endpoint, "model", cfg.Local.Model)
		return localinterp.New(cfg.Local, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}
