package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvmlab/uvmlab/internal/sequence"
	"github.com/uvmlab/uvmlab/internal/tui/styles"
)

var builderKinds = []sequence.StepKind{
	sequence.StepKindRead,
	sequence.StepKindWrite,
	sequence.StepKindIdle,
}

const (
	fieldKind = iota
	fieldAddr
	fieldData
	fieldDelay
	fieldCount
)

// builderModel is the interactive sequence builder view.
type builderModel struct {
	styles styles.Styles

	steps    *sequence.Builder
	compiled string

	editing  bool
	focus    int
	kindIdx  int
	addr     textinput.Model
	data     textinput.Model
	delay    textinput.Model
	selected int
	notice   string
}

func newBuilderModel(styleSet styles.Styles) builderModel {
	addr := textinput.New()
	addr.Placeholder = "0x1000"
	addr.CharLimit = 32
	addr.Width = 14

	data := textinput.New()
	data.Placeholder = "0xFF"
	data.CharLimit = 32
	data.Width = 14

	delay := textinput.New()
	delay.Placeholder = "0"
	delay.CharLimit = 8
	delay.Width = 6

	b := builderModel{
		styles:  styleSet,
		steps:   sequence.NewBuilder(),
		editing: true,
		addr:    addr,
		data:    data,
		delay:   delay,
	}
	b.compiled = b.steps.Compile()
	b.syncFocus()
	return b
}

// editingInput reports whether a text field currently owns the keyboard.
func (b *builderModel) editingInput() bool {
	return b.editing && b.focus != fieldKind
}

func (b *builderModel) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b.forwardToInput(msg)
	}

	b.notice = ""

	if b.editing {
		return b.updateForm(key)
	}
	return b.updateList(key)
}

func (b *builderModel) updateForm(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		b.editing = false
		b.syncFocus()
		return nil

	case "tab", "down":
		b.focus = (b.focus + 1) % fieldCount
		b.syncFocus()
		return nil

	case "shift+tab", "up":
		b.focus = (b.focus + fieldCount - 1) % fieldCount
		b.syncFocus()
		return nil

	case "enter":
		b.addStep()
		return nil
	}

	if b.focus == fieldKind {
		switch key.String() {
		case "left", "h":
			b.kindIdx = (b.kindIdx + len(builderKinds) - 1) % len(builderKinds)
		case "right", "l", " ":
			b.kindIdx = (b.kindIdx + 1) % len(builderKinds)
		}
		return nil
	}

	return b.forwardToInput(key)
}

func (b *builderModel) updateList(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "a", "i", "enter":
		b.editing = true
		b.syncFocus()

	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}

	case "down", "j":
		if b.selected < b.steps.Len()-1 {
			b.selected++
		}

	case "d", "ctrl+d":
		steps := b.steps.Steps()
		if b.selected < len(steps) {
			b.steps.Remove(steps[b.selected].ID)
			if b.selected >= b.steps.Len() && b.selected > 0 {
				b.selected--
			}
			b.recompile()
		}

	case "c", "ctrl+l":
		b.steps.Clear()
		b.selected = 0
		b.recompile()
	}

	return nil
}

func (b *builderModel) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch b.focus {
	case fieldAddr:
		b.addr, cmd = b.addr.Update(msg)
	case fieldData:
		b.data, cmd = b.data.Update(msg)
	case fieldDelay:
		b.delay, cmd = b.delay.Update(msg)
	}
	return cmd
}

func (b *builderModel) addStep() {
	kind := builderKinds[b.kindIdx]
	addr := strings.TrimSpace(b.addr.Value())
	data := strings.TrimSpace(b.data.Value())

	if kind != sequence.StepKindIdle && addr == "" {
		b.notice = "addr is required for read/write steps"
		return
	}
	if kind != sequence.StepKindWrite {
		data = ""
	}
	if kind == sequence.StepKindIdle {
		addr = ""
	}

	b.steps.Add(kind, addr, data, coerceDelay(b.delay.Value()))
	b.recompile()
}

// coerceDelay turns free-form delay text into a non-negative integer.
// Anything unparseable or negative becomes zero.
func coerceDelay(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (b *builderModel) recompile() {
	b.compiled = b.steps.Compile()
}

func (b *builderModel) syncFocus() {
	b.addr.Blur()
	b.data.Blur()
	b.delay.Blur()
	if !b.editing {
		return
	}
	switch b.focus {
	case fieldAddr:
		b.addr.Focus()
	case fieldData:
		b.data.Focus()
	case fieldDelay:
		b.delay.Focus()
	}
}

func (b *builderModel) viewLines(width int) []string {
	lines := []string{
		b.styles.Accent.Render("Sequence builder"),
		"",
		b.formLine(),
	}

	if b.notice != "" {
		lines = append(lines, b.styles.Warning.Render(b.notice))
	}

	lines = append(lines, "")
	lines = append(lines, b.stepTableLines()...)
	lines = append(lines, "", b.styles.Muted.Render("Generated sequence:"))
	lines = append(lines, b.styles.Panel.Width(width-2).Render(b.styles.Code.Render(strings.TrimRight(b.compiled, "\n"))))

	return lines
}

func (b *builderModel) formLine() string {
	kindLabel := string(builderKinds[b.kindIdx])
	kind := b.styles.Text.Render(kindLabel)
	if b.editing && b.focus == fieldKind {
		kind = b.styles.Focus.Render("< " + kindLabel + " >")
	}

	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		b.styles.Muted.Render("kind:"), kind,
		b.styles.Muted.Render("addr:"), b.addr.View(),
		b.styles.Muted.Render("data:"), b.data.View(),
		b.styles.Muted.Render("delay:"), b.delay.View(),
	)
}

func (b *builderModel) stepTableLines() []string {
	steps := b.steps.Steps()
	if len(steps) == 0 {
		return []string{b.styles.Muted.Render("No steps yet. Fill the form and press enter.")}
	}

	lines := make([]string, 0, len(steps)+1)
	lines = append(lines, b.styles.Muted.Render(fmt.Sprintf("  %-3s %-6s %-14s %-14s %s", "#", "KIND", "ADDR", "DATA", "DELAY")))

	for i, step := range steps {
		marker := "  "
		row := fmt.Sprintf("%-3d %-6s %-14s %-14s %d", i+1, step.Kind, step.Addr, step.Data, step.Delay)
		if !b.editing && i == b.selected {
			marker = b.styles.Focus.Render("> ")
			row = b.styles.Focus.Render(row)
		} else {
			row = b.styles.Text.Render(row)
		}
		lines = append(lines, marker+row)
	}

	return lines
}
