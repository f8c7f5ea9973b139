package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/tui/components"
	"github.com/uvmlab/uvmlab/internal/tui/styles"
	"github.com/uvmlab/uvmlab/internal/tutor"
)

// chatModel is the tutor conversation view.
type chatModel struct {
	styles    styles.Styles
	session   *tutor.Session
	selection *arch.Selection

	input textinput.Model
	spin  spinner.Model

	streaming bool
	pending   string
	notice    string
	stream    *tutor.Stream
	cancel    context.CancelFunc
}

func newChatModel(styleSet styles.Styles, client tutor.Client) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask the tutor about the testbench..."
	input.CharLimit = 500

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleSet.Accent

	c := chatModel{
		styles: styleSet,
		input:  input,
		spin:   spin,
	}
	if client != nil {
		c.session = tutor.NewSession(client)
	}
	return c
}

// setSelection gives the chat the component context for questions.
func (c *chatModel) setSelection(selection *arch.Selection) {
	c.selection = selection
}

func (c *chatModel) focus() tea.Cmd {
	c.input.Focus()
	return textinput.Blink
}

func (c *chatModel) blur() {
	c.input.Blur()
}

// cancelStream abandons the in-flight reply, if any. Called on teardown so
// no writes land on a discarded view.
func (c *chatModel) cancelStream() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *chatModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case askStartedMsg:
		c.stream = msg.stream
		return tea.Batch(waitForChunk(c.stream), c.spin.Tick)

	case askRejectedMsg:
		c.streaming = false
		if errors.Is(msg.err, tutor.ErrRequestInFlight) {
			c.notice = "The tutor is still answering; wait for the current reply."
		} else {
			c.notice = tutor.FallbackError
		}
		return nil

	case streamChunkMsg:
		c.pending += msg.chunk
		return waitForChunk(c.stream)

	case streamDoneMsg:
		c.finishStream("")
		return nil

	case streamFailedMsg:
		c.finishStream(tutor.FallbackError)
		return nil

	case spinner.TickMsg:
		if !c.streaming {
			return nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		return c.updateKey(msg)
	}

	return nil
}

func (c *chatModel) updateKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		c.input.Blur()
		return nil

	case "enter":
		if !c.input.Focused() {
			return c.focus()
		}
		return c.submit()
	}

	if !c.input.Focused() {
		if key.String() == "i" {
			return c.focus()
		}
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(key)
	return cmd
}

func (c *chatModel) submit() tea.Cmd {
	question := strings.TrimSpace(c.input.Value())
	if question == "" {
		return nil
	}

	if c.session == nil {
		c.notice = "The tutor is not configured. Set tutor.api_key or OPENAI_API_KEY."
		return nil
	}
	if c.streaming {
		c.notice = "The tutor is still answering; wait for the current reply."
		return nil
	}

	c.notice = ""
	c.pending = ""
	c.streaming = true
	c.input.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	var component arch.Component
	if c.selection != nil {
		component = c.selection.Active()
	}

	return askCmd(ctx, c.session, question, component)
}

func (c *chatModel) finishStream(notice string) {
	c.streaming = false
	c.pending = ""
	c.stream = nil
	c.notice = notice
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *chatModel) viewLines(width int) []string {
	var messages []tutor.Message
	if c.session != nil {
		messages = c.session.Messages()
	}

	lines := []string{
		c.styles.Accent.Render("Tutor chat"),
		"",
		components.RenderTranscript(c.styles, messages, c.pending, width-2),
	}

	if c.streaming {
		lines = append(lines, c.spin.View()+c.styles.Muted.Render(" thinking..."))
	}
	if c.notice != "" {
		lines = append(lines, c.styles.Error.Render(c.notice))
	}

	lines = append(lines, "", c.input.View())
	return lines
}
