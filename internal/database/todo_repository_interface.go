package database

import (
	"context"

	"github.com/thenoetrevino/todos/internal/models"
)

// TodoReader defines read operations for todos.
type TodoReader interface {
	GetAll(ctx context.Context) ([]*models.Todo, error)
	GetPending(ctx context.Context) ([]*models.Todo, error)
	GetCompleted(ctx context.Context) ([]*models.Todo, error)
	GetByDate(ctx context.Context) ([]*models.Todo, error)
	GetByID(ctx context.Context, id int) (*models.Todo, bool, error)
	Search(ctx context.Context, keyword string) ([]*models.Todo, error)
	List(ctx context.Context, filter ListFilter) ([]*models.Todo, int, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// TodoWriter defines write operations for todos.
// Mutations report rows affected; zero means the id did not exist.
type TodoWriter interface {
	Add(ctx context.Context, task string) (int, error)
	AddMany(ctx context.Context, tasks []string) ([]int, error)
	MarkDone(ctx context.Context, id int) (int64, error)
	UpdateTask(ctx context.Context, id int, task string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	ClearCompleted(ctx context.Context) (int64, error)
}

// TodoRepository combines all todo operations.
type TodoRepository interface {
	TodoReader
	TodoWriter
}

// ListFilter narrows and pages a listing. A nil Done means either state.
type ListFilter struct {
	Done   *bool
	Search string
	Limit  int
	Offset int
}
