package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(flags *pflag.FlagSet) {
	flags.Bool("json", false, "Output in JSON format")
	flags.Bool("quiet", false, "Minimal output (IDs or counts only)")
}

// ParseTodoID parses a positional todo id
func ParseTodoID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid todo ID: %s", arg)
	}
	return id, nil
}

// TaskText joins the positional words of a task
func TaskText(args []string) string {
	return strings.Join(args, " ")
}

// StatusFilter converts the --pending/--completed flags into a done filter
func StatusFilter(pending, completed bool) (*bool, error) {
	if pending && completed {
		return nil, fmt.Errorf("--pending and --completed cannot be combined")
	}
	switch {
	case pending:
		done := false
		return &done, nil
	case completed:
		done := true
		return &done, nil
	default:
		return nil, nil
	}
}

// Fail reports err through the formatter and returns a CodedError carrying
// exit. Validation errors are always reported with ExitValidation.
func Fail(formatter *OutputFormatter, code string, exit int, err error) error {
	if todoservice.IsValidation(err) {
		code = "VALIDATION_ERROR"
		exit = ExitValidation
	}
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CodedError{Code: exit, Err: err}
}

// FailWithSuggestion is Fail with a hint for the user
func FailWithSuggestion(formatter *OutputFormatter, code string, exit int, err error, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CodedError{Code: exit, Err: err}
}
