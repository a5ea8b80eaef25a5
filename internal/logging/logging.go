// Package logging configures the zerolog diagnostic logger.
//
// The TUI owns the terminal, so interactive runs write JSON lines to a file;
// one-shot CLI commands write human-readable lines to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// DebugEnv enables debug-level logging when present in the environment.
const DebugEnv = "DEBUG"

// Options configure the root logger.
type Options struct {
	Debug bool
}

func level(opts Options) zerolog.Level {
	if opts.Debug {
		return zerolog.DebugLevel
	}
	if _, ok := os.LookupEnv(DebugEnv); ok {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// OpenFile returns a logger appending to path, creating parent directories as
// needed. The returned closer flushes and closes the file.
func OpenFile(path string, opts Options) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
	}
	logger := zerolog.New(file).Level(level(opts)).With().Timestamp().Logger()
	return logger, file, nil
}

// Console returns a logger writing human-readable lines to w.
func Console(w io.Writer, opts Options) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).Level(level(opts)).With().Timestamp().Logger()
}

// Component derives a sub-logger tagged with component.
func Component(parent zerolog.Logger, component string) zerolog.Logger {
	return parent.With().Str("component", component).Logger()
}
