package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log defaults to the stdlib logger so packages can log before Init runs
// (and under go test).
var Log = slog.Default()

// Init configures the global JSON logger. Unknown level strings fall back
// to info.
func Init(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	Log = slog.New(handler)
}
