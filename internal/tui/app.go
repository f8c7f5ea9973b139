// Package tui implements the uvmlab terminal user interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/tui/styles"
	"github.com/uvmlab/uvmlab/internal/tutor"
	"github.com/uvmlab/uvmlab/internal/walkthrough"
)

// Config wires the TUI to the domain services.
type Config struct {
	// Theme names the color palette.
	Theme string

	// Catalog supplies component display material.
	Catalog *arch.Catalog

	// Steps is the walkthrough script.
	Steps []walkthrough.Step

	// Tutor answers questions; nil disables the chat and explain features.
	Tutor tutor.Client
}

// Run launches the uvmlab TUI program.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type viewID int

const (
	viewDiagram viewID = iota
	viewBuilder
	viewChat
)

const (
	minWidth  = 72
	minHeight = 18
)

type model struct {
	width  int
	height int
	styles styles.Styles
	view   viewID

	catalog     *arch.Catalog
	selection   *arch.Selection
	walkthrough *walkthrough.Controller

	builder builderModel
	chat    chatModel

	explanations map[arch.Component]tutor.Answer
	explaining   bool
	tutorClient  tutor.Client
}

func newModel(cfg Config) (*model, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("component catalog is required")
	}
	if len(cfg.Steps) == 0 {
		return nil, fmt.Errorf("walkthrough steps are required")
	}

	selection := arch.NewSelection(arch.ComponentSequence)
	styleSet := styles.BuildStyles(styles.ThemeByName(cfg.Theme))

	m := &model{
		styles:       styleSet,
		view:         viewDiagram,
		catalog:      cfg.Catalog,
		selection:    selection,
		walkthrough:  walkthrough.NewController(cfg.Steps, selection),
		builder:      newBuilderModel(styleSet),
		chat:         newChatModel(styleSet, cfg.Tutor),
		explanations: make(map[arch.Component]tutor.Answer),
		tutorClient:  cfg.Tutor,
	}
	m.chat.setSelection(selection)
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}

	case explainMsg:
		m.explaining = false
		if msg.err == nil {
			m.explanations[msg.component] = msg.answer
		} else {
			m.explanations[msg.component] = tutor.Answer{Text: tutor.FallbackError}
		}
		return m, nil

	// Reply streaming continues while another view is frontmost, so these
	// always go to the chat model: dropping one would stall the pump and
	// leave the session guard held for the rest of the run.
	case askStartedMsg, askRejectedMsg, streamChunkMsg, streamDoneMsg, streamFailedMsg, spinner.TickMsg:
		return m, m.chat.update(msg)
	}

	switch m.view {
	case viewBuilder:
		return m, m.builder.update(msg)
	case viewChat:
		return m, m.chat.update(msg)
	default:
		return m, m.updateDiagram(msg)
	}
}

func (m *model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if key == "ctrl+c" {
		m.chat.cancelStream()
		return tea.Quit, true
	}

	// Text inputs own printable keys while focused.
	if m.view == viewChat && m.chat.input.Focused() {
		return nil, false
	}
	if m.view == viewBuilder && m.builder.editing {
		return nil, false
	}

	switch key {
	case "q":
		m.chat.cancelStream()
		return tea.Quit, true
	case "1":
		m.view = viewDiagram
		return nil, true
	case "2":
		m.view = viewBuilder
		return nil, true
	case "3":
		m.view = viewChat
		return m.chat.focus(), true
	case "tab":
		m.view = nextView(m.view)
		if m.view == viewChat {
			return m.chat.focus(), true
		}
		m.chat.blur()
		return nil, true
	}

	return nil, false
}

func nextView(current viewID) viewID {
	switch current {
	case viewDiagram:
		return viewBuilder
	case viewBuilder:
		return viewChat
	default:
		return viewDiagram
	}
}

func (m *model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return joinLines(m.smallViewLines()) + "\n"
		}
	}

	lines := []string{
		m.styles.Title.Render("uvmlab - UVM testbench explorer"),
		"",
	}

	switch m.view {
	case viewBuilder:
		lines = append(lines, m.builder.viewLines(m.contentWidth())...)
	case viewChat:
		lines = append(lines, m.chat.viewLines(m.contentWidth())...)
	default:
		lines = append(lines, m.diagramViewLines()...)
	}

	lines = append(lines, "", m.styles.Muted.Render(m.helpLine()))
	return joinLines(lines) + "\n"
}

func (m *model) contentWidth() int {
	if m.width <= 0 {
		return minWidth
	}
	return m.width
}

func (m *model) smallViewLines() []string {
	return []string{
		m.styles.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
		m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m *model) helpLine() string {
	switch m.view {
	case viewBuilder:
		return "1/2/3 views | tab next view | enter add step | ctrl+d remove | ctrl+l clear | q quit"
	case viewChat:
		return "1 diagram | enter ask | esc unfocus | ctrl+c quit"
	default:
		if m.walkthrough.Active() {
			return "n/right next | p/left prev | esc stop walkthrough | q quit"
		}
		return "left/right select | w walkthrough | e explain | 2 builder | 3 chat | q quit"
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
