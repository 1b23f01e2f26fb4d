package hostcanvas

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// loggerPtr stores the active logger. Stored atomically so SetLogger may be
// called from an init path while loaders complete in the background.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newDefaultLogger())
}

// newDefaultLogger prints warnings and errors to stderr.
func newDefaultLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(h).With("pkg", "hostcanvas")
}

// SetLogger replaces the logger used by hostcanvas and its sub-packages.
// Pass nil to restore the default stderr warning logger.
//
// Log levels used:
//   - [slog.LevelDebug]: per-frame dispatch stats (Config.Debug)
//   - [slog.LevelWarn]: unavailable contexts, unbound surfaces, listener failures
//   - [slog.LevelError]: presentation failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
