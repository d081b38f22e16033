// Package tui is the interactive terminal view of the todo list
package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// Model represents the application state for the TUI.
// All data comes from the todo service; the model only keeps the last
// loaded view of it.
type Model struct {
	ctx    context.Context
	svc    todoservice.Service
	keys   keyMap
	styles Styles

	todos []*models.Todo
	stats models.Stats

	cursor int
	filter Filter
	byDate bool
	search string

	mode      Mode
	purpose   InputPurpose
	input     textinput.Model
	editingID int

	width  int
	height int

	notice string
	err    error
}

// New creates the TUI model. Call Init to load the first view.
func New(ctx context.Context, svc todoservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 500

	return Model{
		ctx:    ctx,
		svc:    svc,
		keys:   newKeyMap(cfg.KeyMappings),
		styles: NewStyles(cfg.ColorScheme),
		input:  ti,
	}
}

// Init loads the todos
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Todos returns the currently listed todos
func (m Model) Todos() []*models.Todo {
	return m.todos
}

// Stats returns the counters shown in the footer
func (m Model) Stats() models.Stats {
	return m.stats
}

// Cursor returns the index of the selected todo
func (m Model) Cursor() int {
	return m.cursor
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// Filter returns the active status filter
func (m Model) Filter() Filter {
	return m.filter
}

// Notice returns the last status message
func (m Model) Notice() string {
	return m.notice
}

// Err returns the last operation error, if any
func (m Model) Err() error {
	return m.err
}

// selected returns the todo under the cursor, or nil for an empty list
func (m Model) selected() *models.Todo {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return nil
	}
	return m.todos[m.cursor]
}

// clampCursor keeps the cursor inside the list after a reload
func (m *Model) clampCursor() {
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
