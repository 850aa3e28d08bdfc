package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every line logged through the returned context with
// the subsystem that wrote it.
func WithComponent(ctx context.Context, component string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str("component", component).Logger())
}
