package glyphgen

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by Discover and the Renderer.
// By default, glyphgen produces no log output.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by glyphgen:
//   - [slog.LevelDebug]: skipped search roots, unreadable directories, missing glyphs
//   - [slog.LevelInfo]: scan start, fonts found, each saved image, completion
//   - [slog.LevelWarn]: each font skipped because it failed to load
//
// Example:
//
//	glyphgen.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by glyphgen.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// printfLogger adapts a slog.Logger to the Printf-style logger interface
// expected by github.com/go-text/typesetting/fontscan.
type printfLogger struct {
	l *slog.Logger
}

func (p printfLogger) Printf(format string, args ...interface{}) {
	p.l.Debug(fmt.Sprintf(format, args...), "component", "fontscan")
}
