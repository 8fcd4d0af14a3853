// internal/logging/logging.go

// Package logging configures the process-wide zerolog logger and hands out
// component-scoped child loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = newLogger(os.Stderr, zerolog.InfoLevel, true)
)

// Options controls how the base logger is built.
type Options struct {
	// Level is a zerolog level name such as "debug", "info" or "warn".
	Level string
	// JSON disables the human-readable console writer.
	JSON bool
	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
}

// Init replaces the base logger. Loggers previously returned by Component keep
// their old configuration, so Init belongs at the start of a command.
func Init(opts Options) error {
	level := zerolog.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	mu.Lock()
	base = newLogger(w, level, !opts.JSON)
	mu.Unlock()
	return nil
}

// Logger returns the base logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

func newLogger(w io.Writer, level zerolog.Level, console bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
