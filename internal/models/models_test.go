package models

import (
	"encoding/json"
	"testing"
	"time"
)

// ============================================================================
// Todo Tests
// ============================================================================

func TestTodo_Status(t *testing.T) {
	tests := []struct {
		name string
		done bool
		want string
	}{
		{"pending todo", false, StatusPending},
		{"completed todo", true, StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := &Todo{ID: 1, Task: "Exercise", Done: tt.done}
			if got := todo.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTodo_GetID(t *testing.T) {
	todo := &Todo{ID: 42}
	if todo.GetID() != 42 {
		t.Errorf("GetID() = %d, want 42", todo.GetID())
	}
}

func TestTodo_JSONFieldNames(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	todo := &Todo{ID: 7, Task: "Read books", Done: true, CreatedAt: created}

	data, err := json.Marshal(todo)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, key := range []string{"id", "task", "done", "created_at"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected JSON key %q in %s", key, data)
		}
	}
}

// ============================================================================
// Timestamp Tests
// ============================================================================

func TestTimestampLayout_ParsesSQLiteTimestamp(t *testing.T) {
	ts, err := time.Parse(TimestampLayout, "2025-03-09 14:30:00")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ts.Year() != 2025 || ts.Month() != time.March || ts.Hour() != 14 {
		t.Errorf("unexpected parsed time %v", ts)
	}
}
