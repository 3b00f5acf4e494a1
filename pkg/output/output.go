// Package output handles formatted CLI output (inspired by gh CLI's iostreams).
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Writer handles formatted output for CLI commands.
type Writer struct {
	Out    io.Writer
	Err    io.Writer
	IsaTTY bool
}

// DefaultWriter creates a writer for stdout/stderr.
func DefaultWriter() *Writer {
	return &Writer{
		Out:    os.Stdout,
		Err:    os.Stderr,
		IsaTTY: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// Success prints a success message with a checkmark.
func (w *Writer) Success(format string, args ...any) {
	fmt.Fprintf(w.Out, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error message with an X.
func (w *Writer) Error(format string, args ...any) {
	fmt.Fprintf(w.Err, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Info prints an info message.
func (w *Writer) Info(format string, args ...any) {
	fmt.Fprintf(w.Out, "• %s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(format string, args ...any) {
	fmt.Fprintf(w.Out, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Println prints a message with newline.
func (w *Writer) Println(format string, args ...any) {
	fmt.Fprintln(w.Out, fmt.Sprintf(format, args...))
}
