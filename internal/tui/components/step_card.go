package components

import (
	"fmt"
	"strings"

	"github.com/uvmlab/uvmlab/internal/tui/styles"
	"github.com/uvmlab/uvmlab/internal/walkthrough"
)

// RenderStepCard draws the current walkthrough step as a bordered card.
func RenderStepCard(styleSet styles.Styles, step walkthrough.Step, total, width int) string {
	header := fmt.Sprintf("Step %d/%d: %s", step.Index+1, total, step.Title)

	lines := []string{
		styleSet.Focus.Render(header),
		styleSet.Accent.Render(fmt.Sprintf("component: %s", step.Component)),
		"",
		styleSet.Text.Width(contentWidth(width)).Render(step.Description),
	}

	if code := strings.TrimRight(step.Code, "\n"); code != "" {
		lines = append(lines, "", styleSet.Code.Render(code))
	}

	return styleSet.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

// RenderComponentCard draws a catalog entry as a bordered card, used when
// the user browses the diagram outside a walkthrough.
func RenderComponentCard(styleSet styles.Styles, label, description, code string, width int) string {
	lines := []string{
		styleSet.Title.Render(label),
		"",
		styleSet.Text.Width(contentWidth(width)).Render(description),
	}

	if code = strings.TrimRight(code, "\n"); code != "" {
		lines = append(lines, "", styleSet.Code.Render(code))
	}

	return styleSet.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func contentWidth(width int) int {
	// Panel border plus padding eats four columns.
	if width > 4 {
		return width - 4
	}
	return width
}
