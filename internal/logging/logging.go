package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel accepts "debug", "info", "warn", "error" (case-insensitive).
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup creates a text logger on stderr, sets it as the default, and returns it.
func Setup(level string) *slog.Logger {
	return SetupWriter(level, os.Stderr)
}

func SetupWriter(level string, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
