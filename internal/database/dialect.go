package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect names a storage engine the todos table can live in. The value doubles
// as the database/sql driver name.
type Dialect string

const (
	// SQLite is the default file-backed engine (modernc.org/sqlite)
	SQLite Dialect = "sqlite"

	// Postgres stores the table in a PostgreSQL database (github.com/lib/pq)
	Postgres Dialect = "postgres"
)

// ErrUnsupportedDriver is returned for a driver name other than sqlite or postgres
var ErrUnsupportedDriver = errors.New("unsupported storage driver")

// ParseDialect maps a configured driver name to its Dialect
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, name)
	}
}

// DriverName returns the name registered with database/sql
func (d Dialect) DriverName() string {
	return string(d)
}

// Rebind rewrites '?' placeholders into the engine's native form.
// Queries in this package never contain a literal '?' inside quotes.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// schema returns the DDL statements that create the todos table and its indexes
func (d Dialect) schema() []string {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	createdAt := "created_at TEXT DEFAULT CURRENT_TIMESTAMP"
	if d == Postgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
		createdAt = "created_at TEXT DEFAULT to_char(now() AT TIME ZONE 'UTC', 'YYYY-MM-DD HH24:MI:SS')"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS todos (
			` + idColumn + `,
			task TEXT NOT NULL,
			done INTEGER NOT NULL DEFAULT 0 CHECK (done IN (0, 1)),
			` + createdAt + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_done ON todos(done)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_created_at ON todos(created_at, id)`,
	}
}
