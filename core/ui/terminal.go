// Package ui - Terminal output helpers
// ANSI colors and status lines for the CLI surface.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println(w.color(Green, "✓ ")+format, args...)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println(w.color(Yellow, "⚠ ")+format, args...)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println(w.color(Red, "✗ ")+format, args...)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	w.Println(w.color(Blue, "ℹ ")+format, args...)
}
