// Package logging builds the slog loggers used by the dendro command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Option customizes New.
type Option func(*settings)

type settings struct {
	w    io.Writer
	json bool
}

// WithWriter redirects log output (default Stderr).
func WithWriter(w io.Writer) Option {
	return func(s *settings) { s.w = w }
}

// WithJSON switches to the JSON handler for machine-readable logs.
func WithJSON() Option {
	return func(s *settings) { s.json = true }
}

// New creates a configured application logger.
// It writes to Stderr by default so Stdout stays reserved for TSV, Mermaid and
// report output. It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level, opts ...Option) *slog.Logger {
	s := settings{w: os.Stderr}
	for _, opt := range opts {
		opt(&s)
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}
	if s.json {
		return slog.New(slog.NewJSONHandler(s.w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(s.w, handlerOpts))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
