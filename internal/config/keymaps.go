package config

// KeyMappings defines all configurable key bindings of the terminal UI
type KeyMappings struct {
	// Todos
	AddTodo        string `yaml:"add_todo"`
	EditTodo       string `yaml:"edit_todo"`
	MarkDone       string `yaml:"mark_done"`
	DeleteTodo     string `yaml:"delete_todo"`
	ClearCompleted string `yaml:"clear_completed"`

	// Views
	Search      string `yaml:"search"`
	CycleFilter string `yaml:"cycle_filter"`
	SortByDate  string `yaml:"sort_by_date"`
	Refresh     string `yaml:"refresh"`

	// Navigation
	PrevTodo string `yaml:"prev_todo"`
	NextTodo string `yaml:"next_todo"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTodo:        "a",
		EditTodo:       "e",
		MarkDone:       "d",
		DeleteTodo:     "x",
		ClearCompleted: "c",

		Search:      "/",
		CycleFilter: "f",
		SortByDate:  "s",
		Refresh:     "r",

		PrevTodo: "k",
		NextTodo: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTodo, defaults.AddTodo)
	fill(&k.EditTodo, defaults.EditTodo)
	fill(&k.MarkDone, defaults.MarkDone)
	fill(&k.DeleteTodo, defaults.DeleteTodo)
	fill(&k.ClearCompleted, defaults.ClearCompleted)
	fill(&k.Search, defaults.Search)
	fill(&k.CycleFilter, defaults.CycleFilter)
	fill(&k.SortByDate, defaults.SortByDate)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.PrevTodo, defaults.PrevTodo)
	fill(&k.NextTodo, defaults.NextTodo)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
