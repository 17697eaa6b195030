// Package applog configures the process-wide structured logger. There is
// a single axis of configuration (--verbose): no --format flag, because
// stdout is reserved for the rendered tree, so all logging goes to
// stderr as text.
package applog

import (
	"io"
	"log/slog"
	"os"
)

// Configure installs the process-wide slog.Logger. level is Info unless
// verbose is set, in which case it is Debug. output defaults to os.Stderr
// when nil.
func Configure(verbose bool, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
