package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case todosLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.todos = msg.todos
		m.stats = msg.stats
		m.clampCursor()
		return m, nil

	case opResultMsg:
		m.err = msg.err
		if msg.err == nil {
			m.notice = msg.notice
		}
		return m, m.loadCmd()

	case tea.KeyPressMsg:
		switch m.mode {
		case InputMode:
			return m.updateInput(msg)
		case ConfirmClearMode:
			return m.updateConfirmClear(msg)
		case HelpMode:
			m.mode = NormalMode
			return m, nil
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

// updateNormal dispatches navigation and action keys
func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.startInput(AddInput, "")

	case key.Matches(msg, m.keys.Edit):
		todo := m.selected()
		if todo == nil {
			return m, nil
		}
		m.editingID = todo.ID
		return m.startInput(EditInput, todo.Task)

	case key.Matches(msg, m.keys.Search):
		return m.startInput(SearchInput, m.search)

	case key.Matches(msg, m.keys.MarkDone):
		todo := m.selected()
		if todo == nil {
			return m, nil
		}
		return m, m.markDoneCmd(todo.ID)

	case key.Matches(msg, m.keys.Delete):
		todo := m.selected()
		if todo == nil {
			return m, nil
		}
		return m, m.deleteCmd(todo.ID)

	case key.Matches(msg, m.keys.ClearCompleted):
		if m.stats.Completed == 0 {
			m.notice = "No completed todos to clear"
			return m, nil
		}
		m.mode = ConfirmClearMode
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		m.filter = m.filter.Next()
		m.cursor = 0
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.SortByDate):
		m.byDate = !m.byDate
		m.cursor = 0
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Help):
		m.mode = HelpMode
		return m, nil

	case msg.String() == "esc" && m.search != "":
		m.search = ""
		m.cursor = 0
		return m, m.loadCmd()
	}

	return m, nil
}

// startInput focuses the text input for the given purpose
func (m Model) startInput(purpose InputPurpose, value string) (tea.Model, tea.Cmd) {
	m.mode = InputMode
	m.purpose = purpose
	m.err = nil
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

// updateInput feeds keys to the text input until enter or esc
func (m Model) updateInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = NormalMode
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		m.mode = NormalMode
		m.input.Blur()

		switch m.purpose {
		case AddInput:
			return m, m.addCmd(value)
		case EditInput:
			return m, m.updateCmd(m.editingID, value)
		default:
			m.search = strings.TrimSpace(value)
			m.cursor = 0
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateConfirmClear waits for y or n
func (m Model) updateConfirmClear(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = NormalMode
		return m, m.clearCompletedCmd()
	case "n", "N", "esc":
		m.mode = NormalMode
		m.notice = "Nothing cleared"
	}
	return m, nil
}
