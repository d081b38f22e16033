package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status labels used when rendering a todo
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// ============================================================================
// PAGINATION DEFAULTS
// ============================================================================

const (
	// DefaultPageLimit is used when a listing does not ask for a page size
	DefaultPageLimit = 10

	// MaxPageLimit caps the page size of a listing
	MaxPageLimit = 100
)

// ============================================================================
// TIMESTAMP FORMAT
// ============================================================================

// TimestampLayout matches the text produced by SQLite's CURRENT_TIMESTAMP
const TimestampLayout = "2006-01-02 15:04:05"

// DemoTasks are the five tasks inserted by the seed command
var DemoTasks = []string{"Buy groceries", "Do math homework", "Exercise", "Read books", "Clean room"}
