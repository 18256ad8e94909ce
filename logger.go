package mandelzoom

import (
	"log/slog"

	"github.com/marben/mandelzoom/internal/logging"
)

// SetLogger configures the logger for mandelzoom and all its sub-packages.
// By default no log output is produced. Pass nil to restore the silent
// default. Safe for concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: per-pass diagnostics (sampling, antialias passes)
//   - [slog.LevelInfo]: lifecycle events (preview listening)
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
