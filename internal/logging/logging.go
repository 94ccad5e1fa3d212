package logging

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger builds a text slog logger honouring the given level
// (DEBUG, INFO, WARN, ERROR). Unknown levels fall back to INFO.
func SetupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
