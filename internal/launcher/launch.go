// Package launcher runs the interactive TUI over an open App
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/tui"
)

// Launch starts the TUI and blocks until the user quits or the process is
// interrupted. The caller keeps ownership of application.
func Launch(ctx context.Context, application *app.App, cfg *config.Config) error {
	// Cancel on SIGINT/SIGTERM so in-flight queries see a done context
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.New(ctx, application.TodoService, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Wait for the program to restore the terminal
		if err := <-errChan; err != nil {
			slog.Debug("program stopped", "error", err)
		}
	}

	return nil
}
