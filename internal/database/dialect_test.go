package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"", SQLite, false},
		{"sqlite", SQLite, false},
		{"SQLite3", SQLite, false},
		{"postgres", Postgres, false},
		{" postgresql ", Postgres, false},
		{"pg", Postgres, false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDriver)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialect_Rebind(t *testing.T) {
	query := "UPDATE todos SET task = ? WHERE id = ?"

	assert.Equal(t, query, SQLite.Rebind(query))
	assert.Equal(t, "UPDATE todos SET task = $1 WHERE id = $2", Postgres.Rebind(query))
	assert.Equal(t, "SELECT 1", Postgres.Rebind("SELECT 1"))
}

func TestDialect_Schema(t *testing.T) {
	sqlite := strings.Join(SQLite.schema(), "\n")
	assert.Contains(t, sqlite, "AUTOINCREMENT")
	assert.Contains(t, sqlite, "CREATE TABLE IF NOT EXISTS todos")

	pg := strings.Join(Postgres.schema(), "\n")
	assert.Contains(t, pg, "BIGSERIAL")
	assert.NotContains(t, pg, "AUTOINCREMENT")
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%%", likePattern(""))
	assert.Equal(t, "%homework%", likePattern("homework"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\tmp%`, likePattern(`c:\tmp`))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := parseTimestamp("2024-02-03 04:05:06")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 4, ts.Hour())

	ts, err = parseTimestamp("2024-02-03T04:05:06Z")
	require.NoError(t, err)
	assert.Equal(t, 6, ts.Second())

	_, err = parseTimestamp("yesterday")
	assert.Error(t, err)
}
