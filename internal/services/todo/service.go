// Package todo is the public contract over the todos table. It validates input
// and delegates to the database repository; callers never issue queries
// themselves.
//
// Unknown ids are not errors: mutations report zero rows affected and GetByID
// reports found == false. Storage failures are returned wrapped, never retried.
// Concurrent writers from other processes may block or fail according to the
// storage engine's own locking.
package todo

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

// Service defines all todo operations
type Service interface {
	// Read operations
	GetAll(ctx context.Context) ([]*models.Todo, error)
	GetPending(ctx context.Context) ([]*models.Todo, error)
	GetCompleted(ctx context.Context) ([]*models.Todo, error)
	GetByDate(ctx context.Context) ([]*models.Todo, error)
	GetByID(ctx context.Context, id int) (*models.Todo, bool, error)
	Search(ctx context.Context, keyword string) ([]*models.Todo, error)
	List(ctx context.Context, opts ListOptions) (*models.TodoPage, error)
	Stats(ctx context.Context) (models.Stats, error)

	// Write operations
	Add(ctx context.Context, task string) (int, error)
	AddMany(ctx context.Context, tasks []string) ([]int, error)
	MarkDone(ctx context.Context, id int) (int64, error)
	UpdateTask(ctx context.Context, id int, task string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	ClearCompleted(ctx context.Context) (int64, error)
}

// ListOptions selects one page of a filtered listing.
// Zero Page and Limit fall back to the defaults.
type ListOptions struct {
	Done   *bool
	Search string
	Page   int
	Limit  int
}

// service implements Service on top of a todo repository
type service struct {
	repo   database.TodoRepository
	logger *slog.Logger
}

// Option configures the service
type Option func(*service)

// WithLogger sets the logger used for operation traces
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a todo service over the given repository
func NewService(repo database.TodoRepository, opts ...Option) Service {
	s := &service{
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// READS
// ============================================================================

func (s *service) GetAll(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetPending(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.GetPending(ctx)
}

func (s *service) GetCompleted(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.GetCompleted(ctx)
}

func (s *service) GetByDate(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.GetByDate(ctx)
}

// GetByID returns found == false, with a nil error, for an unknown id
func (s *service) GetByID(ctx context.Context, id int) (*models.Todo, bool, error) {
	return s.repo.GetByID(ctx, id)
}

// Search matches keyword as a substring of the task text.
// The empty keyword is a substring of everything and so matches every todo.
func (s *service) Search(ctx context.Context, keyword string) ([]*models.Todo, error) {
	return s.repo.Search(ctx, keyword)
}

// List returns a page of todos, newest first
func (s *service) List(ctx context.Context, opts ListOptions) (*models.TodoPage, error) {
	page, limit, err := normalizePaging(opts.Page, opts.Limit)
	if err != nil {
		return nil, err
	}

	todos, total, err := s.repo.List(ctx, database.ListFilter{
		Done:   opts.Done,
		Search: opts.Search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	return &models.TodoPage{
		Todos:      todos,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

func (s *service) Stats(ctx context.Context) (models.Stats, error) {
	return s.repo.Stats(ctx)
}

// ============================================================================
// WRITES
// ============================================================================

// Add stores a new pending todo and returns its id
func (s *service) Add(ctx context.Context, task string) (int, error) {
	if err := validateTask(task); err != nil {
		return 0, err
	}

	id, err := s.repo.Add(ctx, task)
	if err != nil {
		s.logger.Error("add todo failed", "error", err)
		return 0, err
	}

	s.logger.Debug("todo added", "id", id)
	return id, nil
}

// AddMany validates every task before storing any of them
func (s *service) AddMany(ctx context.Context, tasks []string) ([]int, error) {
	for i, task := range tasks {
		if err := validateTask(task); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}

	ids, err := s.repo.AddMany(ctx, tasks)
	if err != nil {
		s.logger.Error("add todos failed", "count", len(tasks), "error", err)
		return nil, err
	}

	s.logger.Debug("todos added", "count", len(ids))
	return ids, nil
}

// MarkDone moves a todo to done. There is no way back to pending.
func (s *service) MarkDone(ctx context.Context, id int) (int64, error) {
	n, err := s.repo.MarkDone(ctx, id)
	if err != nil {
		s.logger.Error("mark done failed", "id", id, "error", err)
		return 0, err
	}
	s.logger.Debug("todo marked done", "id", id, "rows", n)
	return n, nil
}

func (s *service) UpdateTask(ctx context.Context, id int, task string) (int64, error) {
	if err := validateTask(task); err != nil {
		return 0, err
	}

	n, err := s.repo.UpdateTask(ctx, id, task)
	if err != nil {
		s.logger.Error("update todo failed", "id", id, "error", err)
		return 0, err
	}
	s.logger.Debug("todo updated", "id", id, "rows", n)
	return n, nil
}

func (s *service) Delete(ctx context.Context, id int) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete todo failed", "id", id, "error", err)
		return 0, err
	}
	s.logger.Debug("todo deleted", "id", id, "rows", n)
	return n, nil
}

func (s *service) ClearCompleted(ctx context.Context) (int64, error) {
	n, err := s.repo.ClearCompleted(ctx)
	if err != nil {
		s.logger.Error("clear completed failed", "error", err)
		return 0, err
	}
	s.logger.Debug("completed todos cleared", "rows", n)
	return n, nil
}

// ============================================================================
// VALIDATION
// ============================================================================

// validateTask rejects blank task text. Accepted text is stored verbatim.
func validateTask(task string) error {
	if strings.TrimSpace(task) == "" {
		return &ValidationError{Field: "task", Err: ErrEmptyTask}
	}
	return nil
}

func normalizePaging(page, limit int) (int, int, error) {
	if page < 0 {
		return 0, 0, &ValidationError{Field: "page", Err: ErrInvalidPage}
	}
	if limit < 0 {
		return 0, 0, &ValidationError{Field: "limit", Err: ErrInvalidLimit}
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = models.DefaultPageLimit
	}
	if limit > models.MaxPageLimit {
		limit = models.MaxPageLimit
	}
	if page > math.MaxInt/limit {
		return 0, 0, &ValidationError{Field: "page", Err: ErrPageTooLarge}
	}
	return page, limit, nil
}
