package components

import (
	"strings"

	"github.com/uvmlab/uvmlab/internal/tui/styles"
	"github.com/uvmlab/uvmlab/internal/tutor"
)

// RenderTranscript draws the chat transcript, appending the partial reply
// still streaming in, if any.
func RenderTranscript(styleSet styles.Styles, messages []tutor.Message, pending string, width int) string {
	if len(messages) == 0 && pending == "" {
		return styleSet.Muted.Render("Ask the tutor anything about the testbench architecture.")
	}

	var lines []string
	for _, msg := range messages {
		lines = append(lines, renderMessage(styleSet, msg, width)...)
		lines = append(lines, "")
	}

	if pending != "" {
		lines = append(lines, styleSet.UserMsg.Render("tutor:"))
		lines = append(lines, styleSet.TutorMsg.Width(width).Render(pending))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func renderMessage(styleSet styles.Styles, msg tutor.Message, width int) []string {
	switch msg.Role {
	case tutor.RoleUser:
		return []string{
			styleSet.UserMsg.Render("you:"),
			styleSet.Text.Width(width).Render(msg.Content),
		}
	case tutor.RoleAssistant:
		answer := tutor.ParseAnswer(msg.Content)
		lines := []string{
			styleSet.UserMsg.Render("tutor:"),
			styleSet.TutorMsg.Width(width).Render(answer.Text),
		}
		if answer.Code != "" {
			lines = append(lines, "", styleSet.Code.Render(answer.Code))
		}
		return lines
	default:
		return []string{styleSet.Muted.Width(width).Render(msg.Content)}
	}
}
