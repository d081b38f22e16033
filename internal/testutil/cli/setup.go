package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, database.SQLite)

	return db, appInstance
}

// CreateTestTodo wraps testutil.CreateTestTodo for CLI tests
func CreateTestTodo(t *testing.T, db *sql.DB, task string, done bool) int {
	t.Helper()
	return testutil.CreateTestTodo(t, db, task, done)
}

// SeedDemoTodos wraps testutil.SeedDemoTodos for CLI tests
func SeedDemoTodos(t *testing.T, db *sql.DB) {
	t.Helper()
	testutil.SeedDemoTodos(t, db)
}
