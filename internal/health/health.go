// Package health provides a simple HTTP health check endpoint.
//
// Docker and Kubernetes use these endpoints to monitor the service. /healthz
// reports liveness; /readyz returns 200 OK only once the transports are up,
// and 503 while starting or draining.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Status is the JSON body of both endpoints.
type Status struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
	Version string `json:"version,omitempty"`
}

// Server is a lightweight HTTP server that exposes /healthz and /readyz.
type Server struct {
	port    int
	backend string
	version string
	ready   atomic.Bool
	server  *http.Server
}

// New creates a new health check server. backend names the completion backend.
func New(port int, backend, version string) *Server {
	return &Server{port: port, backend: backend, version: version}
}

// SetReady marks the service as ready to accept traffic.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// Handler returns the health endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		s.write(w, http.StatusOK, "ok")
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !s.ready.Load() {
			s.write(w, http.StatusServiceUnavailable, "not_ready")
			return
		}
		s.write(w, http.StatusOK, "ok")
	})

	return mux
}

func (s *Server) write(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Status{Status: status, Backend: s.backend, Version: s.version})
}

// ListenAndServe starts the health check HTTP server.
// It blocks until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("health server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("health server: %w", err)
	}
	return nil
}
