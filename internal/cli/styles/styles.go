// Package styles renders todos for the human-readable CLI output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/todos/internal/config/colors"
	"github.com/thenoetrevino/todos/internal/models"
)

// DefaultWidth is the wrap width used when the config does not set one
const DefaultWidth = 60

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	DoneStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// CardStyle frames a single todo
	CardStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Done))

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Pending))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Border)).
		Padding(0, 1)
}

// Checkbox returns the status marker for a todo
func Checkbox(done bool) string {
	if done {
		return DoneStyle.Render("[x]")
	}
	return PendingStyle.Render("[ ]")
}

// WrapTask wraps task text to width and indents continuation lines by indent
// spaces
func WrapTask(task string, width, indent int) string {
	if width <= indent {
		return task
	}
	wrapped := wordwrap.String(task, width-indent)
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", indent))
}

// RenderTodoLine renders one todo as "[x]   3  task"
func RenderTodoLine(todo *models.Todo, width int) string {
	prefix := fmt.Sprintf("%s %4d  ", Checkbox(todo.Done), todo.ID)
	// "[x] " + 4 digit id + 2 spaces
	const indent = 10
	return prefix + ValueStyle.Render(WrapTask(todo.Task, width, indent))
}

// RenderTodoList renders todos one per line under a title
func RenderTodoList(title string, todos []*models.Todo, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	if len(todos) == 0 {
		b.WriteString(SubtitleStyle.Render("No todos."))
		b.WriteString("\n")
		return b.String()
	}
	for _, todo := range todos {
		b.WriteString(RenderTodoLine(todo, width))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTodoCard renders the full detail of one todo inside a bordered card
func RenderTodoCard(todo *models.Todo, width int) string {
	lines := []string{
		TitleStyle.Render(fmt.Sprintf("Todo #%d", todo.ID)),
		"",
		LabelStyle.Render("Task:    ") + ValueStyle.Render(WrapTask(todo.Task, width, 9)),
		LabelStyle.Render("Status:  ") + statusText(todo),
		LabelStyle.Render("Created: ") + ValueStyle.Render(todo.CreatedAt.Format(models.TimestampLayout)),
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

// RenderStats renders the three counters
func RenderStats(stats models.Stats) string {
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		LabelStyle.Render("Total:"), stats.Total,
		DoneStyle.Render("Completed:"), stats.Completed,
		PendingStyle.Render("Pending:"), stats.Pending)
}

// RenderPageFooter renders "Page 2 of 5 (42 todos)"
func RenderPageFooter(page *models.TodoPage) string {
	return SubtitleStyle.Render(fmt.Sprintf("Page %d of %d (%d todos)", page.Page, max(page.TotalPages, 1), page.Total))
}

func statusText(todo *models.Todo) string {
	if todo.Done {
		return DoneStyle.Render(todo.Status())
	}
	return PendingStyle.Render(todo.Status())
}
