package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/tutor"
)

const explainTimeout = 60 * time.Second

// explainMsg carries a tutor explanation for one component.
type explainMsg struct {
	component arch.Component
	answer    tutor.Answer
	err       error
}

func explainCmd(client tutor.Client, component arch.Component) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
		defer cancel()
		answer, err := client.Explain(ctx, component)
		return explainMsg{component: component, answer: answer, err: err}
	}
}

// askStartedMsg carries the reply stream for a submitted question.
type askStartedMsg struct {
	stream *tutor.Stream
}

// askRejectedMsg reports a question that never started streaming, either
// because one is already in flight or the request itself failed.
type askRejectedMsg struct {
	err error
}

// streamChunkMsg carries one reply fragment, in order.
type streamChunkMsg struct {
	chunk string
}

// streamDoneMsg signals a cleanly completed reply.
type streamDoneMsg struct{}

// streamFailedMsg signals a reply that ended in error or cancellation.
type streamFailedMsg struct {
	err error
}

func askCmd(ctx context.Context, session *tutor.Session, question string, component arch.Component) tea.Cmd {
	return func() tea.Msg {
		stream, err := session.Ask(ctx, question, component)
		if err != nil {
			return askRejectedMsg{err: err}
		}
		return askStartedMsg{stream: stream}
	}
}

// waitForChunk receives the next fragment; Update re-issues it after every
// chunk so fragments append in arrival order.
func waitForChunk(stream *tutor.Stream) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-stream.Chunks()
		if !ok {
			if err := stream.Err(); err != nil {
				return streamFailedMsg{err: err}
			}
			return streamDoneMsg{}
		}
		return streamChunkMsg{chunk: chunk}
	}
}
