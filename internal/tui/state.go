package tui

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active and what is displayed.
type Mode int

const (
	NormalMode       Mode = iota // Default navigation mode
	InputMode                    // Typing into the text input
	ConfirmClearMode             // Confirming removal of completed todos
	HelpMode                     // Displaying the key bindings
)

// InputPurpose records what the text input is collecting
type InputPurpose int

const (
	AddInput InputPurpose = iota
	EditInput
	SearchInput
)

// Filter selects which todos are listed
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterCompleted
)

// Next cycles all -> pending -> completed -> all
func (f Filter) Next() Filter {
	return (f + 1) % 3
}

func (f Filter) String() string {
	switch f {
	case FilterPending:
		return "pending"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// matches reports whether a todo with the given done flag passes the filter
func (f Filter) matches(done bool) bool {
	switch f {
	case FilterPending:
		return !done
	case FilterCompleted:
		return done
	default:
		return true
	}
}
