// Package transport defines the interface for pluggable request transports.
//
// Each transport (HTTP, gRPC) implements this interface and is handed the
// router's Handle method. The router doesn't care how utterances arrive; it
// only works with the Transport contract.
package transport

import (
	"context"

	"github.com/nadzzz/lingodesk/internal/message"
)

// Handler processes an incoming utterance and returns the reply.
type Handler func(ctx context.Context, u *message.Utterance) (*message.Reply, error)

// Transport is the interface that every transport adapter must implement.
type Transport interface {
	// Name returns the transport identifier (e.g., "grpc", "http").
	Name() string

	// Listen starts accepting utterances and passes them to the handler.
	// It blocks until the context is cancelled.
	Listen(ctx context.Context, handler Handler) error

	// Close gracefully shuts down the transport, draining in-flight work.
	Close() error
}
