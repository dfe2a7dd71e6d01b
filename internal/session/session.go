// Package session owns calculator state on behalf of a consumer.
//
// The state machine in internal/calc is a pure function; something still
// has to hold the current state, feed presses through the transition, and
// remember what happened. Session is that single writer: it stamps every
// press with a logical clock seq, applies the transition, and appends to
// an in-memory trace.
//
// Sessions are safe for concurrent use, but the model is single-writer:
// presses are processed one at a time, to completion, fully ordered by
// arrival. Traces live only in memory; nothing persists across sessions.
package session

import (
	"io"
	"log/slog"
	"sync"

	"github.com/roach88/abacus/internal/calc"
)

// Session holds one calculator's state and press trace.
type Session struct {
	mu     sync.Mutex
	token  string
	clock  *Clock
	state  calc.State
	trace  []TraceEvent
	logger *slog.Logger
}

// Option configures a Session at construction.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything;
// the CLI installs a real handler under --verbose.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTokenGenerator overrides the session token source.
// Tests pass a FixedGenerator for deterministic traces.
func WithTokenGenerator(gen TokenGenerator) Option {
	return func(s *Session) {
		s.token = gen.Generate()
	}
}

// New creates a session in the power-on state with a fresh UUIDv7 token.
func New(opts ...Option) *Session {
	s := &Session{
		token:  UUIDv7Generator{}.Generate(),
		clock:  NewClock(),
		state:  calc.Initial(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies one press and returns the resulting state.
//
// The only error path is a malformed event arriving from outside the
// keypad parser; the transition itself is total and cannot fail. On error
// the state, clock, and trace are untouched.
func (s *Session) Dispatch(e calc.Event) (calc.State, error) {
	if err := e.Validate(); err != nil {
		return calc.State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.clock.Next()
	s.state = calc.Transition(s.state, e)
	ev := TraceEvent{
		Seq:      seq,
		Key:      e.Label(),
		Display:  s.state.Display,
		Rendered: calc.FormatDisplay(s.state.Display),
	}
	s.trace = append(s.trace, ev)

	s.logger.Debug("press",
		"session", s.token,
		"seq", seq,
		"key", ev.Key,
		"kind", e.Kind.String(),
		"display", ev.Rendered,
	)
	return s.state, nil
}

// DispatchAll applies presses in order and returns the final state.
// It stops at the first malformed event.
func (s *Session) DispatchAll(events []calc.Event) (calc.State, error) {
	var (
		state calc.State
		err   error
	)
	for _, e := range events {
		if state, err = s.Dispatch(e); err != nil {
			return calc.State{}, err
		}
	}
	if len(events) == 0 {
		state = s.State()
	}
	return state, nil
}

// State returns the current state.
func (s *Session) State() calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the session token.
func (s *Session) Token() string {
	return s.token
}

// Trace returns a copy of the press trace so far.
func (s *Session) Trace() []TraceEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TraceEvent, len(s.trace))
	copy(out, s.trace)
	return out
}
