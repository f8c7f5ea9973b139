package tutor

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/logging"
)

// Session holds one conversation with the tutor: the running transcript
// plus the at-most-one-outstanding-request guard that keeps interleaved
// partial replies out of the displayed transcript.
type Session struct {
	client Client
	logger zerolog.Logger

	mu       sync.Mutex
	id       string
	messages []Message
	inflight bool
}

// NewSession returns an empty conversation backed by the given client.
func NewSession(client Client) *Session {
	return &Session{
		client: client,
		logger: logging.Component("tutor-session"),
		id:     uuid.NewString(),
	}
}

// ID returns the conversation identifier.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Ask sends a question to the tutor and returns the reply stream. While a
// request is outstanding further calls fail with ErrRequestInFlight. The
// question is recorded in the transcript immediately; the assistant reply
// is recorded once the stream ends, including whatever partial text
// arrived before a failure or cancellation.
func (s *Session) Ask(ctx context.Context, question string, component arch.Component) (*Stream, error) {
	s.mu.Lock()
	if s.inflight {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	s.inflight = true
	history := make([]Message, len(s.messages))
	copy(history, s.messages)
	s.messages = append(s.messages, Message{Role: RoleUser, Content: question})
	s.mu.Unlock()

	upstream, err := s.client.Chat(ctx, history, question, component)
	if err != nil {
		s.mu.Lock()
		s.inflight = false
		s.mu.Unlock()
		return nil, err
	}

	out := newStream()
	go s.forward(ctx, upstream, out)
	return out, nil
}

// InFlight reports whether a request is currently outstanding.
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset clears the transcript and starts a fresh conversation. An
// in-flight request keeps streaming into the old transcript copy but is
// no longer recorded.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = uuid.NewString()
	s.messages = nil
}

func (s *Session) forward(ctx context.Context, upstream, out *Stream) {
	var reply strings.Builder
	abandoned := false
	for chunk := range upstream.Chunks() {
		reply.WriteString(chunk)
		if !abandoned && !out.send(ctx, chunk) {
			// Consumer is gone; keep draining so the producer can finish.
			abandoned = true
		}
	}
	err := upstream.Err()
	if err != nil {
		s.logger.Debug().Err(err).Msg("tutor reply incomplete")
	}

	s.mu.Lock()
	s.inflight = false
	if text := reply.String(); text != "" {
		s.messages = append(s.messages, Message{Role: RoleAssistant, Content: text})
	}
	s.mu.Unlock()

	out.close(err)
}
