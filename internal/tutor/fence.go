package tutor

import "strings"

// ParseAnswer splits the first fenced code block out of a tutor reply so
// the caller can display prose and code separately. Replies without a
// fence come back unchanged with empty Code.
func ParseAnswer(reply string) Answer {
	open := strings.Index(reply, "```")
	if open == -1 {
		return Answer{Text: strings.TrimSpace(reply)}
	}

	rest := reply[open+3:]
	// Skip the info string ("systemverilog", "sv", ...) on the fence line.
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		rest = rest[nl+1:]
	} else {
		rest = ""
	}

	closing := strings.Index(rest, "```")
	if closing == -1 {
		// Unterminated fence: treat everything after it as code.
		return Answer{
			Text: strings.TrimSpace(reply[:open]),
			Code: strings.TrimRight(rest, "\n"),
		}
	}

	code := strings.TrimRight(rest[:closing], "\n")
	prose := reply[:open] + rest[closing+3:]
	return Answer{
		Text: strings.TrimSpace(prose),
		Code: code,
	}
}
