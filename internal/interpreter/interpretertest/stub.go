// Package interpretertest provides a scriptable Completer for tests.
package interpretertest

import (
	"context"
	"sync"

	"github.com/nadzzz/lingodesk/internal/interpreter"
)

// Stub answers every request with Fn, or with Reply and Err when Fn is nil.
// It records each request it receives.
type Stub struct {
	Reply string
	Err   error
	Fn    func(interpreter.Request) (string, error)

	mu    sync.Mutex
	calls []interpreter.Request
}

// Name returns "stub".
func (s *Stub) Name() string { return "stub" }

// Complete records r and returns the scripted answer.
func (s *Stub) Complete(_ context.Context, r interpreter.Request) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, r)
	s.mu.Unlock()
	if s.Fn != nil {
		return s.Fn(r)
	}
	return s.Reply, s.Err
}

// Close is a no-op.
func (s *Stub) Close() error { return nil }

// Calls returns a copy of the recorded requests.
func (s *Stub) Calls() []interpreter.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]interpreter.Request, len(s.calls))
	copy(out, s.calls)
	return out
}
