package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/models"
)

// todosLoadedMsg carries a freshly loaded view of the list
type todosLoadedMsg struct {
	todos []*models.Todo
	stats models.Stats
	err   error
}

// opResultMsg reports the outcome of a mutation
type opResultMsg struct {
	notice string
	err    error
}

// loadCmd reads the todos for the current filter, search and sort
func (m Model) loadCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	filter, byDate, search := m.filter, m.byDate, m.search

	return func() tea.Msg {
		var (
			todos []*models.Todo
			err   error
		)
		filtered := false

		switch {
		case search != "":
			todos, err = svc.Search(ctx, search)
		case byDate:
			todos, err = svc.GetByDate(ctx)
		case filter == FilterPending:
			todos, err = svc.GetPending(ctx)
			filtered = true
		case filter == FilterCompleted:
			todos, err = svc.GetCompleted(ctx)
			filtered = true
		default:
			todos, err = svc.GetAll(ctx)
			filtered = true
		}
		if err != nil {
			return todosLoadedMsg{err: err}
		}

		if !filtered {
			kept := todos[:0]
			for _, todo := range todos {
				if filter.matches(todo.Done) {
					kept = append(kept, todo)
				}
			}
			todos = kept
		}

		stats, err := svc.Stats(ctx)
		if err != nil {
			return todosLoadedMsg{err: err}
		}

		return todosLoadedMsg{todos: todos, stats: stats}
	}
}

func (m Model) addCmd(task string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		id, err := svc.Add(ctx, task)
		if err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{notice: fmt.Sprintf("Added todo %d", id)}
	}
}

func (m Model) updateCmd(id int, task string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		n, err := svc.UpdateTask(ctx, id, task)
		if err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{notice: affectedNotice(n, id, "updated")}
	}
}

func (m Model) markDoneCmd(id int) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		n, err := svc.MarkDone(ctx, id)
		if err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{notice: affectedNotice(n, id, "marked done")}
	}
}

func (m Model) deleteCmd(id int) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		n, err := svc.Delete(ctx, id)
		if err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{notice: affectedNotice(n, id, "deleted")}
	}
}

func (m Model) clearCompletedCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		n, err := svc.ClearCompleted(ctx)
		if err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{notice: fmt.Sprintf("Cleared %d completed todo(s)", n)}
	}
}

func affectedNotice(n int64, id int, verb string) string {
	if n == 0 {
		return fmt.Sprintf("Todo %d no longer exists", id)
	}
	return fmt.Sprintf("Todo %d %s", id, verb)
}
