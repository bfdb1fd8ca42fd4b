// Package logger provides the verbose output used by the command line tools.
package logger

import (
	"fmt"
	"io"
	"os"
)

// Logger writes prefixed diagnostic lines when enabled. A nil *Logger is
// valid and discards everything.
type Logger struct {
	enabled bool
	prefix  string
	out     io.Writer
}

// New creates a logger writing to stderr. Every line starts with
// "[prefix] ".
func New(prefix string, enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		prefix:  "[" + prefix + "] ",
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	if l != nil {
		l.out = w
	}
}

// Log prints a formatted message if the logger is enabled.
func (l *Logger) Log(format string, args ...any) {
	if l.Enabled() {
		fmt.Fprintf(l.out, l.prefix+format+"\n", args...)
	}
}

// Section prints a section header if the logger is enabled.
func (l *Logger) Section(name string) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n%s=== %s ===\n", l.prefix, name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
