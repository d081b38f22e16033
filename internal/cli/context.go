package cli

import (
	"context"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp returns a context carrying an already open App. Commands run with
// this context use it instead of opening their own session, and leave it open.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig returns a context carrying the loaded configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or the
// defaults when none was stored
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI for the command context, reusing an
// injected App when present
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)

	if ctx != nil {
		if injected, ok := ctx.Value(appKey).(*app.App); ok && injected != nil {
			return &CLI{App: injected, Config: cfg}, nil
		}
	}

	return NewCLI(ctx, cfg)
}
