// Package ctxlog carries a slog.Logger through context.Context so that every
// layer of the content pipeline logs through the logger the application
// configured, without threading a logger argument through every call.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with our context entry.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context that carries the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the process default logger
// when none was attached. Library code never has to nil-check the result.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
