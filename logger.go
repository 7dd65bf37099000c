package glyphatlas

import (
	"log/slog"

	"github.com/gogpu/glyphatlas/internal/logging"
)

// SetLogger configures the logger for glyphatlas and all its sub-packages.
// By default, glyphatlas produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by glyphatlas:
//   - [slog.LevelDebug]: atlas creation, new shelves, eviction cycles
//   - [slog.LevelWarn]: eviction requested with nothing to evict
//
// Example:
//
//	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by glyphatlas.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
