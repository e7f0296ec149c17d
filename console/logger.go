package console

import (
	"log/slog"

	"github.com/pterm/pterm"
)

// NewLogger returns a slog.Logger printing through pterm at level or above.
func NewLogger(level slog.Level) *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(logLevel(level))
	return slog.New(pterm.NewSlogHandler(logger))
}

func logLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level < slog.LevelInfo:
		return pterm.LogLevelDebug
	case level < slog.LevelWarn:
		return pterm.LogLevelInfo
	case level < slog.LevelError:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
