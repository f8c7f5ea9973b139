// Package components provides reusable TUI render helpers.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/tui/styles"
)

// RenderDiagram draws the testbench block diagram with the active
// component highlighted. While a walkthrough owns the selection the
// highlight switches to the locked style.
func RenderDiagram(styleSet styles.Styles, catalog *arch.Catalog, active arch.Component, locked bool) string {
	box := func(c arch.Component) string {
		label := string(c)
		if catalog != nil {
			if info, ok := catalog.Describe(c); ok {
				label = info.Label
			}
		}
		style := styleSet.Box
		if c == active {
			style = styleSet.BoxActive
			if locked {
				style = styleSet.BoxLocked
			}
		}
		return style.Render(label)
	}

	arrow := styleSet.Muted.Render(" --> ")
	backArrow := styleSet.Muted.Render(" <-- ")
	busArrow := styleSet.Muted.Render(" <-> ")

	stimulus := lipgloss.JoinHorizontal(lipgloss.Center,
		box(arch.ComponentSequence), arrow,
		box(arch.ComponentSequencer), arrow,
		box(arch.ComponentDriver),
	)

	response := lipgloss.JoinHorizontal(lipgloss.Center,
		box(arch.ComponentScoreboard), backArrow,
		box(arch.ComponentMonitor), backArrow,
		box(arch.ComponentInterface), busArrow,
		box(arch.ComponentDUT),
	)

	// Drop line from the driver down to the interface row.
	drop := strings.Repeat(" ", dropColumn(stimulus, response)) + styleSet.Muted.Render("|")

	return lipgloss.JoinVertical(lipgloss.Left, stimulus, drop, response)
}

// dropColumn places the connector under the driver box and above the
// interface box, as close to both as the fixed layout allows.
func dropColumn(stimulus, response string) int {
	top := lipgloss.Width(stimulus)
	bottom := lipgloss.Width(response)
	col := top - 4
	if bottom-4 < col {
		col = bottom - 4
	}
	if col < 0 {
		col = 0
	}
	return col
}
