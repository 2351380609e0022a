// Package logging builds the slog logger used for diagnostics. User-facing
// output goes through internal/ui; logs go to stderr.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "CODEXSPEC_LOG_LEVEL"
	EnvFormat = "CODEXSPEC_LOG_FORMAT"
)

// New returns a structured logger writing to w. format can be "json" or "text"
// (the default). Unknown levels fall back to warn.
func New(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// FromEnv builds a logger from CODEXSPEC_LOG_LEVEL and CODEXSPEC_LOG_FORMAT.
// debug forces the debug level. Level "off" silences logging entirely.
func FromEnv(getenv func(string) string, debug bool, w io.Writer) *slog.Logger {
	level := getenv(EnvLevel)
	if debug {
		level = "debug"
	}
	if strings.EqualFold(strings.TrimSpace(level), "off") {
		return Discard()
	}
	return New(level, getenv(EnvFormat), w)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
