package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// ParseLevel converts string (debug|info|warn|error) to slog.Level. Unknown → error.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// New creates a text logger writing to w with the given level string.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// NewDefault creates a logger writing to stderr with the given level string.
// Stdout is reserved for command output.
func NewDefault(level string) *slog.Logger {
	return New(os.Stderr, level)
}

// WithRunID tags every record of l with a fresh run_id.
func WithRunID(l *slog.Logger) *slog.Logger {
	return l.With("run_id", uuid.NewString())
}
