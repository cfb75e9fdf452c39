// logger stores an slog.Logger in a context.Context (logger.WithLogger)
// for later retrieval by adapters (logger.FromContext). The default
// handler is github.com/charmbracelet/log writing to stderr.
package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

var loggerKey = &contextKey{}

// WithLogger returns a context carrying l. Retrieve it with
// FromContext.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// WithDefaultLogger returns a context carrying New(false).
func WithDefaultLogger(ctx context.Context) context.Context {
	return WithLogger(ctx, New(false))
}

// FromContext retrieves the slog.Logger saved by WithLogger. When the
// context has none, a default logger is returned so the result is
// always usable.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return New(false)
	}
	return l
}

// New returns an slog.Logger backed by charmbracelet/log. verbose
// lowers the level to Debug so the per-document traversal logging
// becomes visible.
func New(verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return slog.New(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	}))
}
