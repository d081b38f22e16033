package todo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcli "github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/testutil/cli"
)

func quietIDs(output string) []string {
	return strings.Fields(output)
}

func TestListTodos(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.SeedDemoTodos(t, db)
	cli.CreateTestTodo(t, db, "Water plants", true)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"all by id", []string{"--quiet"}, []string{"1", "2", "3", "4", "5", "6"}},
		{"pending", []string{"--pending", "--quiet"}, []string{"1", "2", "3", "4", "5"}},
		{"completed", []string{"--completed", "--quiet"}, []string{"6"}},
		{"paged newest first", []string{"--limit", "2", "--quiet"}, []string{"6", "5"}},
		{"second page", []string{"--limit", "2", "--page", "2", "--quiet"}, []string{"4", "3"}},
		{"search newest first", []string{"--search", "oo", "--quiet"}, []string{"5", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, ListCmd(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, quietIDs(output))
		})
	}
}

func TestListTodos_ByDate(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.SeedDemoTodos(t, db)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--by-date", "--quiet"})
	require.NoError(t, err)
	// Same timestamp within a second, ties broken by id
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, quietIDs(output))
}

func TestListTodos_JSONPage(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.SeedDemoTodos(t, db)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--page", "1", "--limit", "2", "--json"})
	require.NoError(t, err)

	result := cli.ParseJSON(t, output)
	data := result["data"].(map[string]any)
	assert.Equal(t, float64(5), data["total"])
	assert.Equal(t, float64(3), data["total_pages"])
	assert.Equal(t, true, data["has_next_page"])
	assert.Equal(t, false, data["has_prev_page"])
	assert.Len(t, data["todos"], 2)
}

func TestListTodos_Human(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.CreateTestTodo(t, db, "Buy groceries", false)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--pending"})
	require.NoError(t, err)
	assert.Contains(t, output, "Pending todos")
	assert.Contains(t, output, "Buy groceries")
}

func TestListTodos_Negative(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("Conflicting status flags", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--pending", "--completed"})
		require.Error(t, err)
		assert.Equal(t, appcli.ExitUsage, appcli.ExitCode(err))
	})

	t.Run("By date with status filter", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--by-date", "--pending"})
		require.Error(t, err)
		assert.Equal(t, appcli.ExitUsage, appcli.ExitCode(err))
	})

	t.Run("Negative limit", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--limit", "-1"})
		require.Error(t, err)
		assert.Equal(t, appcli.ExitValidation, appcli.ExitCode(err))
	})
}
