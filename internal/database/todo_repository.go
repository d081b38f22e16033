package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/todos/internal/models"
)

const todoColumns = "id, task, done, created_at"

// TodoRepo handles pure data access for todos.
// No validation happens here; callers go through the todo service.
type TodoRepo struct {
	db      *sql.DB
	dialect Dialect
}

// NewTodoRepo creates a repository over an open storage session
func NewTodoRepo(db *sql.DB, dialect Dialect) *TodoRepo {
	if dialect == "" {
		dialect = SQLite
	}
	return &TodoRepo{db: db, dialect: dialect}
}

// ============================================================================
// WRITES
// ============================================================================

// Add inserts a todo and returns the id assigned by the storage engine
func (r *TodoRepo) Add(ctx context.Context, task string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`INSERT INTO todos (task) VALUES (?) RETURNING id`),
		task,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add todo: %w", err)
	}
	return id, nil
}

// AddMany inserts all tasks in one transaction. Either every task is stored
// or none is.
func (r *TodoRepo) AddMany(ctx context.Context, tasks []string) ([]int, error) {
	ids := make([]int, 0, len(tasks))
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, r.dialect.Rebind(`INSERT INTO todos (task) VALUES (?) RETURNING id`))
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, task := range tasks {
			var id int
			if err := stmt.QueryRowContext(ctx, task).Scan(&id); err != nil {
				return fmt.Errorf("failed to add todo %q: %w", task, err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// MarkDone sets done = 1. An already-done todo still counts as affected.
func (r *TodoRepo) MarkDone(ctx context.Context, id int) (int64, error) {
	n, err := r.exec(ctx, `UPDATE todos SET done = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to mark todo %d as done: %w", id, err)
	}
	return n, nil
}

// UpdateTask replaces the task text, leaving id and created_at alone
func (r *TodoRepo) UpdateTask(ctx context.Context, id int, task string) (int64, error) {
	n, err := r.exec(ctx, `UPDATE todos SET task = ? WHERE id = ?`, task, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return n, nil
}

// Delete removes a single todo
func (r *TodoRepo) Delete(ctx context.Context, id int) (int64, error) {
	n, err := r.exec(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return n, nil
}

// ClearCompleted removes every done todo in a single statement
func (r *TodoRepo) ClearCompleted(ctx context.Context) (int64, error) {
	n, err := r.exec(ctx, `DELETE FROM todos WHERE done = 1`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear completed todos: %w", err)
	}
	return n, nil
}

func (r *TodoRepo) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ============================================================================
// READS
// ============================================================================

// GetAll returns every todo in insertion order
func (r *TodoRepo) GetAll(ctx context.Context) ([]*models.Todo, error) {
	todos, err := r.query(ctx, `SELECT `+todoColumns+` FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	return todos, nil
}

// GetPending returns todos that are not done
func (r *TodoRepo) GetPending(ctx context.Context) ([]*models.Todo, error) {
	todos, err := r.query(ctx, `SELECT `+todoColumns+` FROM todos WHERE done = 0 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending todos: %w", err)
	}
	return todos, nil
}

// GetCompleted returns todos that are done
func (r *TodoRepo) GetCompleted(ctx context.Context) ([]*models.Todo, error) {
	todos, err := r.query(ctx, `SELECT `+todoColumns+` FROM todos WHERE done = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed todos: %w", err)
	}
	return todos, nil
}

// GetByDate returns todos newest first; id breaks ties within the same second
func (r *TodoRepo) GetByDate(ctx context.Context) ([]*models.Todo, error) {
	todos, err := r.query(ctx, `SELECT `+todoColumns+` FROM todos ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by date: %w", err)
	}
	return todos, nil
}

// GetByID returns the todo with the given id. found is false when no row matches.
func (r *TodoRepo) GetByID(ctx context.Context, id int) (*models.Todo, bool, error) {
	row := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`SELECT `+todoColumns+` FROM todos WHERE id = ?`), id)

	todo, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return todo, true, nil
}

// Search returns todos whose task contains keyword. Case sensitivity follows
// the engine's LIKE: ASCII case-insensitive on SQLite, case-sensitive on
// Postgres. An empty keyword matches every row.
func (r *TodoRepo) Search(ctx context.Context, keyword string) ([]*models.Todo, error) {
	todos, err := r.query(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE task LIKE ? ESCAPE '\' ORDER BY id`,
		likePattern(keyword))
	if err != nil {
		return nil, fmt.Errorf("failed to search todos for %q: %w", keyword, err)
	}
	return todos, nil
}

// List returns one page of todos matching the filter, newest first, together
// with the number of rows matching the filter. Both reads share a transaction
// so the count agrees with the page.
func (r *TodoRepo) List(ctx context.Context, filter ListFilter) ([]*models.Todo, int, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.Done != nil {
		conditions = append(conditions, "done = ?")
		args = append(args, boolToInt(*filter.Done))
	}
	if filter.Search != "" {
		conditions = append(conditions, `task LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.Search))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var (
		todos []*models.Todo
		total int
	)
	err := withTx(ctx, r.db, &sql.TxOptions{ReadOnly: r.dialect == Postgres}, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx,
			r.dialect.Rebind(`SELECT COUNT(*) FROM todos`+where), args...,
		).Scan(&total); err != nil {
			return fmt.Errorf("failed to count todos: %w", err)
		}

		pageArgs := append(append([]interface{}{}, args...), filter.Limit, filter.Offset)
		rows, err := tx.QueryContext(ctx,
			r.dialect.Rebind(`SELECT `+todoColumns+` FROM todos`+where+
				` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`),
			pageArgs...)
		if err != nil {
			return fmt.Errorf("failed to list todos: %w", err)
		}
		todos, err = scanTodos(rows)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return todos, total, nil
}

// Stats counts all, completed and pending todos in one aggregate query
func (r *TodoRepo) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN done = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN done = 0 THEN 1 ELSE 0 END), 0)
		FROM todos
	`).Scan(&stats.Total, &stats.Completed, &stats.Pending)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to get todo stats: %w", err)
	}
	return stats, nil
}

func (r *TodoRepo) query(ctx context.Context, query string, args ...interface{}) ([]*models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return scanTodos(rows)
}

// ============================================================================
// MODEL CONVERSION HELPERS
// ============================================================================

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		todo      models.Todo
		done      sql.NullInt64
		createdAt sql.NullString
	)
	if err := row.Scan(&todo.ID, &todo.Task, &done, &createdAt); err != nil {
		return nil, err
	}
	todo.Done = done.Valid && done.Int64 == 1

	if createdAt.Valid {
		ts, err := parseTimestamp(createdAt.String)
		if err != nil {
			return nil, err
		}
		todo.CreatedAt = ts
	}
	return &todo, nil
}

// scanTodos drains and closes rows. The result is never nil.
func scanTodos(rows *sql.Rows) ([]*models.Todo, error) {
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}
