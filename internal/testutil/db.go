// Package testutil provides shared helpers for tests that need a real
// storage session
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

// DemoTasks are the five tasks used by the demo sequence and scenario tests
var DemoTasks = models.DemoTasks

// SetupTestDB creates an in-memory database with the todos schema.
// The database is closed when the test finishes.
func SetupTestDB(t testing.TB) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.Options{
		Dialect: database.SQLite,
		Path:    ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestTodo inserts a todo and returns its ID
func CreateTestTodo(t testing.TB, db *sql.DB, task string, done bool) int {
	t.Helper()
	doneValue := 0
	if done {
		doneValue = 1
	}
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO todos (task, done) VALUES (?, ?)", task, doneValue)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// SeedDemoTodos inserts DemoTasks in order, giving them ids 1 through 5 on a
// fresh database
func SeedDemoTodos(t testing.TB, db *sql.DB) {
	t.Helper()
	for _, task := range DemoTasks {
		CreateTestTodo(t, db, task, false)
	}
}

// TodoDone reads the stored done flag for a todo
func TodoDone(t testing.TB, db *sql.DB, id int) bool {
	t.Helper()
	var done int
	err := db.QueryRowContext(context.Background(), "SELECT done FROM todos WHERE id = ?", id).Scan(&done)
	if err != nil {
		t.Fatalf("Failed to read todo %d: %v", id, err)
	}
	return done == 1
}
