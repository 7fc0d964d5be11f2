package curvy

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record and reports itself as disabled,
// so no message formatting happens while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by curvy. By default nothing is logged.
// Passing nil restores the silent default. It is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: frame timings and export progress
//   - [slog.LevelInfo]: host lifecycle (window opened, terminal closed)
//   - [slog.LevelError]: a frame that failed and was skipped
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently in use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
