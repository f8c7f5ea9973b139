package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme     Theme
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Code      lipgloss.Style
	Panel     lipgloss.Style
	Box       lipgloss.Style
	BoxActive lipgloss.Style
	BoxLocked lipgloss.Style
	Focus     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	UserMsg   lipgloss.Style
	TutorMsg  lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(tokens.Border)).
		Foreground(lipgloss.Color(tokens.Text)).
		Padding(0, 1)

	return Styles{
		Theme:     theme,
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Code:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
		Panel:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Box:       box,
		BoxActive: box.BorderForeground(lipgloss.Color(tokens.Focus)).Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		BoxLocked: box.BorderForeground(lipgloss.Color(tokens.Warning)).Foreground(lipgloss.Color(tokens.Warning)).Bold(true),
		Focus:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
		UserMsg:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		TutorMsg:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
	}
}
