package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/config"
)

func TestOpen_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todos.db")

	a, err := Open(ctx, config.StorageConfig{Driver: "sqlite", Path: path, BusyTimeoutMS: 100})
	require.NoError(t, err)

	id, err := a.TodoService.Add(ctx, "Buy groceries")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	reopened, err := Open(ctx, config.StorageConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	todo, found, err := reopened.TodoService.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Buy groceries", todo.Task)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestClose_NilDB(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
