// Package app wires the storage session and the services that use it
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/database"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// It owns the storage session and closes it in Close.
type App struct {
	db     *sql.DB
	logger *slog.Logger

	// Service layer (validation + todo operations)
	TodoService todoservice.Service
}

// New creates a new App over an already open storage session
func New(db *sql.DB, dialect database.Dialect, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewTodoRepo(db, dialect)
	return &App{
		db:          db,
		logger:      cfg.logger,
		TodoService: todoservice.NewService(repo, todoservice.WithLogger(cfg.logger)),
	}
}

// Open opens the storage session described by cfg and builds the App
func Open(ctx context.Context, cfg config.StorageConfig, opts ...Option) (*App, error) {
	dialect, err := database.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(ctx, database.Options{
		Dialect:     dialect,
		Path:        cfg.Path,
		DSN:         cfg.DSN,
		BusyTimeout: cfg.BusyTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return New(db, dialect, opts...), nil
}

// Close releases the storage session
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("error closing db", "error", err)
		return err
	}
	return nil
}
