package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todos/internal/models"
)

// chrome is the number of lines used by the header, footer and status rows
const chrome = 6

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.mode == HelpMode {
		view.Content = m.viewHelp()
		return view
	}

	sections := []string{
		m.viewHeader(),
		m.viewList(),
		m.styles.Footer.Render(fmt.Sprintf("Total %d · Completed %d · Pending %d",
			m.stats.Total, m.stats.Completed, m.stats.Pending)),
		m.viewStatus(),
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left, sections...)
	return view
}

func (m Model) viewHeader() string {
	tags := []string{"[" + m.filter.String() + "]"}
	if m.byDate {
		tags = append(tags, "[newest first]")
	}
	if m.search != "" {
		tags = append(tags, fmt.Sprintf("[search: %s]", m.search))
	}
	return m.styles.Title.Render("Todos") + " " + m.styles.Tag.Render(strings.Join(tags, " "))
}

// visibleRange returns the slice bounds of the rows that fit on screen
func (m Model) visibleRange() (int, int) {
	rows := m.height - chrome
	if m.height == 0 || rows >= len(m.todos) {
		return 0, len(m.todos)
	}
	if rows < 1 {
		rows = 1
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	return start, start + rows
}

func (m Model) viewList() string {
	if len(m.todos) == 0 {
		return m.styles.Footer.Render("No todos. Press " + m.keys.Add.Help().Key + " to add one.")
	}

	start, end := m.visibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.viewRow(m.todos[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewRow(todo *models.Todo, selected bool) string {
	box := m.styles.Pending.Render("[ ]")
	task := m.styles.Normal.Render(todo.Task)
	if todo.Done {
		box = m.styles.Done.Render("[x]")
		task = m.styles.Done.Render(todo.Task)
	}

	row := fmt.Sprintf("%s %3d  %s", box, todo.ID, task)
	if selected {
		return m.styles.Selected.Render(">") + " " + row
	}
	return "  " + row
}

func (m Model) viewStatus() string {
	switch {
	case m.mode == InputMode:
		return m.styles.Prompt.Render(m.inputTitle()) + "\n" + m.input.View()
	case m.mode == ConfirmClearMode:
		return m.styles.Error.Render(fmt.Sprintf("Delete %d completed todo(s)? (y/n)", m.stats.Completed))
	case m.err != nil:
		return m.styles.Error.Render("Error: " + m.err.Error())
	case m.notice != "":
		return m.styles.Notice.Render(m.notice)
	default:
		return m.styles.Footer.Render("Press " + m.keys.Help.Help().Key + " for help, " + m.keys.Quit.Help().Key + " to quit")
	}
}

func (m Model) inputTitle() string {
	switch m.purpose {
	case EditInput:
		return fmt.Sprintf("Edit todo %d", m.editingID)
	case SearchInput:
		return "Search"
	default:
		return "New todo"
	}
}

func (m Model) viewHelp() string {
	lines := []string{m.styles.Title.Render("Key bindings"), ""}
	for _, b := range m.keys.bindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%s  %s", m.styles.HelpKey.Render(fmt.Sprintf("%-6s", h.Key)), h.Desc))
	}
	lines = append(lines, "", m.styles.Footer.Render("Press any key to return"))

	return m.styles.HelpBox.Render(strings.Join(lines, "\n"))
}
