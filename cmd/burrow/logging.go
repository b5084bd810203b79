package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger for w. Search statistics are logged at info
// level; verbose adds debug messages.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
