package cli

import "strings"

// PreflightError describes a failed precondition with a recovery hint.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\n  hint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\n  next: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}
