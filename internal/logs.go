package internal

import (
	"log/slog"
	"os"
)

// LoggerFromString builds a text logger on stderr at the named level.
// Unknown level names fall back to INFO.
func LoggerFromString(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
