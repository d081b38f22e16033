package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todos/internal/config/colors"
)

// Styles holds every lipgloss style the TUI renders with
type Styles struct {
	Title    lipgloss.Style
	Tag      lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Done     lipgloss.Style
	Pending  lipgloss.Style
	Footer   lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
	HelpBox  lipgloss.Style
	HelpKey  lipgloss.Style
}

// NewStyles builds the TUI styles from a color scheme
func NewStyles(scheme colors.ColorScheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Accent)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Normal)).
			Background(lipgloss.Color(scheme.SelectedBg)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(scheme.Done)),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Pending)),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Accent)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Error)),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Border)).
			Padding(0, 1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),
	}
}
