package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init; Init replaces it with the configured handler.
var Log = slog.Default()

// Init configures the package-level logger. JSON output so log lines are
// machine-parseable in production.
func Init(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
