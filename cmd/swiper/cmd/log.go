package cmd

import (
	"io"
	"log/slog"
)

// Logger is the CLI's structured logger.
var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// initLogger writes warnings to w, or every record when verbose is set.
func initLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
