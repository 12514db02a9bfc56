package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the diagnostic logger. Diagnostics go to w (stderr
// in practice) so they never mix with listing output, and --verbose
// raises the level to debug without affecting the produced file.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}
