// 2 Jun 2025

// Package cmdlog sets up the logger each command writes its
// diagnostics to. Results go to stdout with fmt. Only chatter goes
// through here.
package cmdlog

import (
	"io"
	"os"
	"path"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to standard error, with the program
// name as prefix. verbose turns on debug messages.
func New(prog string, verbose bool) *log.Logger {
	return NewTo(os.Stderr, prog, verbose)
}

// NewTo is New, but writing to w. Tests use it to capture output.
func NewTo(w io.Writer, prog string, verbose bool) *log.Logger {
	lvl := log.InfoLevel
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          path.Base(prog),
		Level:           lvl,
		ReportTimestamp: verbose,
	})
}

// Discard is a logger for callers that do not care, mostly tests.
func Discard() *log.Logger {
	return NewTo(io.Discard, "", false)
}
