package deepzoom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record and reports every level disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the viewer's diagnostics to l. Until it is called, and
// after SetLogger(nil), they are dropped. Debug records carry per-frame orbit
// and draw timings and skipped arithmetic steps; info records mark the window
// opening and scripts finishing; warnings report resizes, frames and
// screenshots that could not be used.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
