// Package http implements the HTTP transport for lingodesk.
//
// This transport exposes a small REST API for routing customer utterances and
// serves the generated OpenAPI docs. It is best suited for web chat widgets
// and help-desk integrations.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/nadzzz/lingodesk/docs" // registers the swagger spec
	"github.com/nadzzz/lingodesk/internal/message"
	"github.com/nadzzz/lingodesk/internal/transport"
)

// maxBody bounds a single utterance request.
const maxBody = 64 << 10

// Transport implements transport.Transport over HTTP.
type Transport struct {
	port   int
	server *http.Server
}

// New creates a new HTTP transport on the given port.
func New(port int) *Transport {
	return &Transport{port: port}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// Routes returns the transport's request multiplexer.
func Routes(handler transport.Handler) http.Handler {
	mux := http.NewServeMux()

	// POST /respond: accepts JSON or plain text, returns the reply.
	mux.HandleFunc("POST /respond", func(w http.ResponseWriter, r *http.Request) {
		handleRespond(w, r, handler)
	})

	// Swagger UI: serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}

// Listen starts the HTTP server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	t.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", t.port),
		Handler:           Routes(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = t.server.Shutdown(shutdownCtx)
	}()

	if err := t.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// handleRespond processes a POST /respond request.
//
// @Summary     Answer a customer utterance
// @Description Routes one utterance to a canned multilingual reply when a known intent is matched
// @Description confidently, and to the generative fallback otherwise. The reply is always displayable text.
// @Tags        support
// @Accept      json
// @Accept      plain
// @Produce     json
// @Param       utterance  body    message.Utterance  true   "Utterance (JSON). For plain text, POST the text directly."
// @Param       X-Lingodesk-Source  header  string  false  "Sender identifier (used with plain text bodies)"
// @Success     200  {object}  message.Reply  "Routed reply"
// @Failure     400  {string}  string  "Invalid request body"
// @Failure     500  {string}  string  "Internal processing error"
// @Router      /respond [post]
func handleRespond(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	var u message.Utterance

	body := io.LimitReader(r.Body, maxBody)
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if err := json.NewDecoder(body).Decode(&u); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
	default:
		// Treat body as plain text; read the sender from headers.
		data, err := io.ReadAll(body)
		if err != nil {
			http.Error(w, "reading body: "+err.Error(), http.StatusBadRequest)
			return
		}
		u.Text = string(data)
		u.Source = r.Header.Get("X-Lingodesk-Source")
	}

	if strings.TrimSpace(u.Text) == "" {
		http.Error(w, "text must not be empty", http.StatusBadRequest)
		return
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Source == "" {
		u.Source = "http"
	}
	u.Timestamp = time.Now().UTC()

	reply, err := handler(r.Context(), &u)
	if err != nil {
		slog.Error("respond failed", "utterance_id", u.ID, "error", err)
		http.Error(w, "respond error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reply)
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	if t.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return t.server.Shutdown(ctx)
	}
	return nil
}
