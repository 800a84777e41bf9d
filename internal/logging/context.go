package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx, or a logger built from the
// environment when none is present.
func FromContext(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		fallback := NewFromEnv()
		return &fallback
	}
	return logger
}

// WithContext stores the logger in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent returns a context whose logger carries a component field.
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx).With().Str("component", component).Logger()
	return logger.WithContext(ctx)
}

// WithSurfaceID returns a context whose logger carries the surface id.
func WithSurfaceID(ctx context.Context, id string) context.Context {
	logger := FromContext(ctx).With().Str("surface_id", id).Logger()
	return logger.WithContext(ctx)
}

// WithWindow returns a context whose logger carries the window label.
func WithWindow(ctx context.Context, label string) context.Context {
	logger := FromContext(ctx).With().Str("window", label).Logger()
	return logger.WithContext(ctx)
}
