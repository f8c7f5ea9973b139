// Package logging configures the zerolog logger shared across uvmlab.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = newLogger(os.Stderr, zerolog.WarnLevel)
)

// Setup reconfigures the root logger. Level accepts the standard zerolog
// level names; unknown values fall back to "info".
func Setup(out io.Writer, level string) {
	if out == nil {
		out = os.Stderr
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	mu.Lock()
	root = newLogger(out, parsed)
	mu.Unlock()
}

// Component returns a logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", name).Logger()
}

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
