package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/todos/internal/config"
)

// keyMap holds the bindings of normal mode
type keyMap struct {
	Next           key.Binding
	Prev           key.Binding
	Add            key.Binding
	Edit           key.Binding
	MarkDone       key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding
	Search         key.Binding
	CycleFilter    key.Binding
	SortByDate     key.Binding
	Refresh        key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// newKeyMap builds the bindings from the configured key mappings
func newKeyMap(k config.KeyMappings) keyMap {
	return keyMap{
		Next:           key.NewBinding(key.WithKeys(k.NextTodo, "down"), key.WithHelp(k.NextTodo, "move down")),
		Prev:           key.NewBinding(key.WithKeys(k.PrevTodo, "up"), key.WithHelp(k.PrevTodo, "move up")),
		Add:            key.NewBinding(key.WithKeys(k.AddTodo), key.WithHelp(k.AddTodo, "add a todo")),
		Edit:           key.NewBinding(key.WithKeys(k.EditTodo), key.WithHelp(k.EditTodo, "edit the selected todo")),
		MarkDone:       key.NewBinding(key.WithKeys(k.MarkDone), key.WithHelp(k.MarkDone, "mark the selected todo done")),
		Delete:         key.NewBinding(key.WithKeys(k.DeleteTodo), key.WithHelp(k.DeleteTodo, "delete the selected todo")),
		ClearCompleted: key.NewBinding(key.WithKeys(k.ClearCompleted), key.WithHelp(k.ClearCompleted, "clear completed todos")),
		Search:         key.NewBinding(key.WithKeys(k.Search), key.WithHelp(k.Search, "search (esc clears)")),
		CycleFilter:    key.NewBinding(key.WithKeys(k.CycleFilter), key.WithHelp(k.CycleFilter, "cycle all / pending / completed")),
		SortByDate:     key.NewBinding(key.WithKeys(k.SortByDate), key.WithHelp(k.SortByDate, "toggle newest first")),
		Refresh:        key.NewBinding(key.WithKeys(k.Refresh), key.WithHelp(k.Refresh, "reload")),
		Help:           key.NewBinding(key.WithKeys(k.ShowHelp), key.WithHelp(k.ShowHelp, "show this help")),
		Quit:           key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
	}
}

// bindings lists the bindings in the order the help screen shows them
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{
		k.Next, k.Prev, k.Add, k.Edit, k.MarkDone, k.Delete, k.ClearCompleted,
		k.Search, k.CycleFilter, k.SortByDate, k.Refresh, k.Help, k.Quit,
	}
}
