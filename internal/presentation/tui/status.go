package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Status writes coloured one-line outcomes. Colours are dropped automatically
// when the writer is not a terminal.
type Status struct {
	out *termenv.Output
}

// NewStatus creates a Status writing to w.
func NewStatus(w io.Writer) *Status {
	return &Status{out: termenv.NewOutput(w)}
}

// OK prints a green check line.
func (s *Status) OK(format string, args ...any) {
	s.line("✔", "#22c55e", format, args...)
}

// Warn prints a yellow warning line.
func (s *Status) Warn(format string, args ...any) {
	s.line("!", "#eab308", format, args...)
}

// Fail prints a red cross line.
func (s *Status) Fail(format string, args ...any) {
	s.line("✘", "#ef4444", format, args...)
}

func (s *Status) line(mark, color, format string, args ...any) {
	prefix := s.out.String(mark).Foreground(s.out.Color(color)).Bold()
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
