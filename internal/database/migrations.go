package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the todos table and its indexes if they are missing.
// Existing tables are left untouched, so it is safe on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	for _, stmt := range dialect.schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
