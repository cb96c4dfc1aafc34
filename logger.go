package artpaint

import (
	"log/slog"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
)

// SetLogger configures the logger for artpaint and all its sub-packages.
// By default, artpaint produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by artpaint:
//   - [slog.LevelDebug]: per-operation diagnostics (bands, sizes, methods)
//   - [slog.LevelWarn]: degenerate input that turns an operation into a
//     no-op (zero-length gradient, pivot outside the bitmap)
//
// Example:
//
//	artpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by artpaint. It never returns
// nil.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
