package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/tui/components"
)

func (m *model) updateDiagram(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "w":
		m.walkthrough.Start()

	case "esc", "s":
		m.walkthrough.Stop()

	case "n", "right", " ":
		if m.walkthrough.Active() {
			m.walkthrough.Next()
		} else if key.String() == "right" {
			m.selectNeighbor(1)
		}

	case "p", "left":
		if m.walkthrough.Active() {
			m.walkthrough.Prev()
		} else if key.String() == "left" {
			m.selectNeighbor(-1)
		}

	case "e":
		return m.explainActive()
	}

	return nil
}

// selectNeighbor moves the manual selection along the diagram order.
// Selection itself rejects the move while a walkthrough owns it.
func (m *model) selectNeighbor(offset int) {
	order := arch.Components()
	active := m.selection.Active()
	for i, c := range order {
		if c != active {
			continue
		}
		next := i + offset
		if next < 0 || next >= len(order) {
			return
		}
		m.selection.Select(order[next])
		return
	}
}

func (m *model) explainActive() tea.Cmd {
	if m.tutorClient == nil || m.explaining {
		return nil
	}
	component := m.selection.Active()
	if _, ok := m.explanations[component]; ok {
		return nil
	}
	m.explaining = true
	return explainCmd(m.tutorClient, component)
}

func (m *model) diagramViewLines() []string {
	lines := []string{
		components.RenderDiagram(m.styles, m.catalog, m.selection.Active(), m.selection.Locked()),
		"",
	}

	cardWidth := m.contentWidth() - 2

	if step, ok := m.walkthrough.Current(); ok {
		lines = append(lines, components.RenderStepCard(m.styles, step, m.walkthrough.Len(), cardWidth))
		return lines
	}

	active := m.selection.Active()
	info, _ := m.catalog.Describe(active)
	description := info.Description
	code := info.Code

	if answer, ok := m.explanations[active]; ok {
		description = answer.Text
		if answer.Code != "" {
			code = answer.Code
		}
	}

	lines = append(lines, components.RenderComponentCard(m.styles, info.Label, description, code, cardWidth))

	if m.explaining {
		lines = append(lines, m.styles.Muted.Render("asking the tutor..."))
	}

	return lines
}
