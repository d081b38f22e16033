package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/todos/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// parseTimestamp converts the stored created_at text into a UTC time.
// Both engines write "YYYY-MM-DD HH:MM:SS"; RFC 3339 is accepted for rows
// written by other tools.
func parseTimestamp(raw string) (time.Time, error) {
	if ts, err := time.ParseInLocation(models.TimestampLayout, raw, time.UTC); err == nil {
		return ts, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created_at %q: %w", raw, err)
	}
	return ts.UTC(), nil
}

// likePattern builds a substring LIKE pattern that matches the keyword
// literally. Pair it with ESCAPE '\'.
func likePattern(keyword string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(keyword) + "%"
}

// boolToInt converts the done flag to its stored 0/1 form
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
