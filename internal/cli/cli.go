package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// false when the App was injected and belongs to the caller
	ownsApp bool
}

// NewCLI opens the storage session described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg.Storage, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open todos: %w", err)
	}

	return &CLI{
		App:     application,
		Config:  cfg,
		ownsApp: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.ownsApp || c.App == nil {
		return nil
	}
	return c.App.Close()
}
