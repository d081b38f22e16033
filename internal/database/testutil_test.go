package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/todos/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the schema applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), Options{Dialect: SQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile returns the path of a file-backed database for persistence tests
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todos-test.db")
}

// openFileDB opens (or reopens) a file-backed database
func openFileDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), Options{
		Dialect:     SQLite,
		Path:        path,
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db
}

// ============================================================================
// DATA HELPERS
// ============================================================================

// demoTasks are the five tasks the scenario tests start from
var demoTasks = []string{"Buy groceries", "Do math homework", "Exercise", "Read books", "Clean room"}

// createTestTodo inserts a todo directly and returns its ID
func createTestTodo(t *testing.T, db *sql.DB, task string, done bool) int {
	t.Helper()
	var id int
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO todos (task, done) VALUES (?, ?) RETURNING id", task, boolToInt(done)).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	return id
}

// createTestTodoAt inserts a todo with an explicit creation timestamp
func createTestTodoAt(t *testing.T, db *sql.DB, task string, createdAt string) int {
	t.Helper()
	var id int
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO todos (task, created_at) VALUES (?, ?) RETURNING id", task, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	return id
}

// ids extracts todo IDs in order
func ids(todos []*models.Todo) []int {
	out := make([]int, len(todos))
	for i, todo := range todos {
		out[i] = todo.ID
	}
	return out
}
