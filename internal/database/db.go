// Package database handles the connection to the storage engine and all SQL
// against the todos table
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DefaultPath is the storage file used when nothing else is configured
const DefaultPath = "database.db"

// Options selects and tunes the storage engine
type Options struct {
	Dialect     Dialect
	Path        string // sqlite file, or ":memory:"
	DSN         string // postgres connection string
	BusyTimeout time.Duration
}

// InitDB opens the storage session, applies engine settings and ensures the
// schema exists. The returned handle is closed on every failure path.
func InitDB(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.Dialect == "" {
		opts.Dialect = SQLite
	}

	var (
		db  *sql.DB
		err error
	)
	switch opts.Dialect {
	case SQLite:
		db, err = openSQLite(opts)
	case Postgres:
		db, err = openPostgres(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, opts.Dialect)
	}
	if err != nil {
		return nil, err
	}

	// One session at a time; concurrent writers from other processes are left
	// to the engine's own locking.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := EnsureSchema(ctx, db, opts.Dialect); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	slog.Debug("database ready", "driver", opts.Dialect, "path", opts.Path)
	return db, nil
}

func openSQLite(opts Options) (*sql.DB, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	inMemory := path == ":memory:"
	if !inMemory {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
		}
	}

	db, err := sql.Open(SQLite.DriverName(), sqliteDSN(path, inMemory, opts.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// sqliteDSN appends the connection pragmas to path. The driver runs them on
// every connection it opens, so they hold for the life of the pool.
func sqliteDSN(path string, inMemory bool, busyTimeout time.Duration) string {
	params := url.Values{}
	if !inMemory {
		// WAL lets readers in other processes proceed while a write is in flight
		params.Add("_pragma", "journal_mode(WAL)")
	}
	if busyTimeout > 0 {
		params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	}
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func openPostgres(opts Options) (*sql.DB, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("postgres driver requires a dsn")
	}
	db, err := sql.Open(Postgres.DriverName(), opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
