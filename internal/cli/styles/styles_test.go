package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/todos/internal/models"
)

func TestWrapTask(t *testing.T) {
	got := WrapTask("one two three four five six", 14, 4)
	lines := strings.Split(got, "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "    "), "continuation %q must be indented", line)
	}

	assert.Equal(t, "short", WrapTask("short", 3, 4))
}

func TestRenderTodoList(t *testing.T) {
	todos := []*models.Todo{
		{ID: 1, Task: "Buy groceries"},
		{ID: 2, Task: "Exercise", Done: true},
	}

	out := RenderTodoList("All todos", todos, DefaultWidth)
	assert.Contains(t, out, "All todos")
	assert.Contains(t, out, "Buy groceries")
	assert.Contains(t, out, "Exercise")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")

	empty := RenderTodoList("All todos", nil, DefaultWidth)
	assert.Contains(t, empty, "No todos.")
}

func TestRenderTodoCard(t *testing.T) {
	todo := &models.Todo{
		ID:        7,
		Task:      "Read books",
		CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	out := RenderTodoCard(todo, DefaultWidth)
	assert.Contains(t, out, "Todo #7")
	assert.Contains(t, out, "Read books")
	assert.Contains(t, out, models.StatusPending)
	assert.Contains(t, out, "2024-03-01 09:30:00")
}

func TestRenderStats(t *testing.T) {
	out := RenderStats(models.Stats{Total: 5, Completed: 2, Pending: 3})
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "3")
}
