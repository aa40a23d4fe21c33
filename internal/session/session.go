// Package session runs the interactive terminal conversation.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// State of a session.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

const (
	botPrefix       = "Customer Support Bot: "
	userPrompt      = "You: "
	thinking        = "Thinking..."
	farewell        = "Thank you for using our support service. Have a great day!"
	interruptNotice = "Bot session terminated by user."
)

// DefaultGreeting is shown when the catalog has no English greeting.
const DefaultGreeting = "Hello! How can I help you today?"

var terminationPhrases = map[string]struct{}{
	"exit":    {},
	"quit":    {},
	"bye":     {},
	"goodbye": {},
}

// IsTermination reports whether line ends the conversation.
func IsTermination(line string) bool {
	_, ok := terminationPhrases[strings.ToLower(strings.TrimSpace(line))]
	return ok
}

// Responder answers one utterance. It must always return displayable text.
type Responder interface {
	Respond(ctx context.Context, text string) string
}

// Session reads lines from in and writes the conversation to out.
type Session struct {
	responder Responder
	in        io.Reader
	out       io.Writer
	greeting  string
	state     State
}

// New creates a session. An empty greeting uses DefaultGreeting.
func New(r Responder, in io.Reader, out io.Writer, greeting string) *Session {
	if greeting == "" {
		greeting = DefaultGreeting
	}
	return &Session{responder: r, in: in, out: out, greeting: greeting}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

type line struct {
	text string
	err  error
}

// Run drives the conversation until a termination phrase, end of input, or ctx
// cancellation. Utterances are answered strictly one at a time.
func (s *Session) Run(ctx context.Context) error {
	s.state = Running
	defer func() { s.state = Terminated }()

	fmt.Fprintln(s.out, "===== Multilingual Customer Support Bot =====")
	fmt.Fprintln(s.out, "Type 'exit' or 'quit' to end the conversation")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, botPrefix+s.greeting)

	lines := make(chan line)
	next := make(chan struct{})
	go s.read(lines, next)
	defer close(next)

	for {
		fmt.Fprint(s.out, userPrompt)

		var l line
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, interruptNotice)
			return nil
		case l, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}
		if l.err != nil {
			return fmt.Errorf("reading input: %w", l.err)
		}

		if IsTermination(l.text) {
			fmt.Fprintln(s.out, botPrefix+farewell)
			return nil
		}
		if strings.TrimSpace(l.text) == "" {
			next <- struct{}{}
			continue
		}

		fmt.Fprintln(s.out, thinking)
		reply := s.responder.Respond(ctx, l.text)
		fmt.Fprintln(s.out, botPrefix+reply)
		fmt.Fprintln(s.out)
		next <- struct{}{}
	}
}

// read delivers one line per request so that no input is consumed while an
// utterance is being answered.
func (s *Session) read(lines chan<- line, next <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		select {
		case lines <- line{text: scanner.Text()}:
		case <-next:
			return
		}
		if _, ok := <-next; !ok {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case lines <- line{err: err}:
		case <-next:
		}
	}
}
