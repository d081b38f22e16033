package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/models"
)

func newTestFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Width: 60, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Success(&models.Todo{ID: 3, Task: "Exercise"}))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])

	data := result["data"].(map[string]any)
	assert.Equal(t, float64(3), data["id"])
	assert.Equal(t, "Exercise", data["task"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"single todo", &models.Todo{ID: 4}, "4\n"},
		{"todo list", []*models.Todo{{ID: 1}, {ID: 2}}, "1\n2\n"},
		{"page", &models.TodoPage{Todos: []*models.Todo{{ID: 9}}}, "9\n"},
		{"mutation", MutationResult{ID: 2, Affected: 1}, "1\n"},
		{"stats", models.Stats{Total: 5, Completed: 2, Pending: 3}, "5 2 3\n"},
		{"file", FileResult{Path: "/tmp/todos.yaml", Message: "Wrote /tmp/todos.yaml"}, "/tmp/todos.yaml\n"},
		{"unknown", struct{ Name string }{"x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			require.NoError(t, f.Success(tt.data))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestOutputFormatter_Success_QuietWinsOverJSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, true)
	require.NoError(t, f.Success(&models.Todo{ID: 8}))
	assert.Equal(t, "8\n", out.String())
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	f.Title = "Pending todos"

	require.NoError(t, f.Success([]*models.Todo{{ID: 1, Task: "Buy groceries"}}))
	assert.Contains(t, out.String(), "Pending todos")
	assert.Contains(t, out.String(), "Buy groceries")

	out.Reset()
	require.NoError(t, f.Success(MutationResult{ID: 1, Affected: 1, Message: "Todo 1 marked done"}))
	assert.Equal(t, "Todo 1 marked done\n", out.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		f, out, errOut := newTestFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("TODO_NOT_FOUND", "todo 9 not found", "run 'todos list'"))

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "TODO_NOT_FOUND", errData["code"])
		assert.Equal(t, "run 'todos list'", errData["suggestion"])
		assert.Empty(t, errOut.String())
	})

	t.Run("human", func(t *testing.T) {
		f, out, errOut := newTestFormatter(false, false)
		require.NoError(t, f.Error("TODO_NOT_FOUND", "todo 9 not found"))
		assert.Empty(t, out.String())
		assert.True(t, strings.Contains(errOut.String(), "todo 9 not found"))
		assert.NotContains(t, errOut.String(), "Suggestion")
	})
}
