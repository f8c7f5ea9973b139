// Package tutor integrates the LLM collaborator that answers questions
// about the testbench architecture.
package tutor

import (
	"context"
	"errors"

	"github.com/uvmlab/uvmlab/internal/arch"
)

// Role identifies the speaker of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a conversation transcript.
type Message struct {
	Role    Role
	Content string
}

// Answer is a completed tutor reply with any fenced code block split out.
type Answer struct {
	Text string
	Code string
}

// FallbackError is the fixed user-visible message shown in place of a
// tutor reply when the collaborator fails. Failures never crash the app.
const FallbackError = "The tutor is unavailable right now. Check your API settings and try again."

// ErrRequestInFlight rejects a new question while one is still streaming.
var ErrRequestInFlight = errors.New("a tutor request is already in flight")

// Client is the narrow interface to the tutor collaborator.
type Client interface {
	// Explain produces a canned explanation of one architecture component.
	Explain(ctx context.Context, component arch.Component) (Answer, error)

	// Chat answers a free-text question in the context of a conversation
	// and the currently selected component. The reply arrives as an
	// ordered, cancellable stream of text fragments.
	Chat(ctx context.Context, history []Message, question string, component arch.Component) (*Stream, error)
}
