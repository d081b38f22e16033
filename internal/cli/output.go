package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Title heads human-readable todo lists
	Title string
	// Width wraps long task text in human-readable output
	Width int

	Out    io.Writer
	ErrOut io.Writer
}

// MutationResult describes the outcome of done, update, delete and clear
type MutationResult struct {
	ID       int    `json:"id,omitempty"`
	Affected int64  `json:"affected"`
	Message  string `json:"message"`
}

// FileResult describes a file written by a command
type FileResult struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// NewFormatter builds a formatter from the command's --json/--quiet flags and
// output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	width := ConfigFromContext(cmd.Context()).Output.Width
	if width <= 0 {
		width = styles.DefaultWidth
	}

	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Width:  width,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		return f.quietPrint(data)
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// quietPrint prints ids for todos and counts for everything else
func (f *OutputFormatter) quietPrint(data any) error {
	w := f.out()
	switch v := data.(type) {
	case interface{ GetID() int }:
		_, err := fmt.Fprintf(w, "%d\n", v.GetID())
		return err
	case []*models.Todo:
		for _, todo := range v {
			if _, err := fmt.Fprintf(w, "%d\n", todo.ID); err != nil {
				return err
			}
		}
		return nil
	case *models.TodoPage:
		return f.quietPrint(v.Todos)
	case MutationResult:
		_, err := fmt.Fprintf(w, "%d\n", v.Affected)
		return err
	case FileResult:
		_, err := fmt.Fprintln(w, v.Path)
		return err
	case models.Stats:
		_, err := fmt.Fprintf(w, "%d %d %d\n", v.Total, v.Completed, v.Pending)
		return err
	default:
		return nil
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	title := f.Title
	if title == "" {
		title = "Todos"
	}

	var text string
	switch v := data.(type) {
	case *models.Todo:
		text = styles.RenderTodoCard(v, f.Width) + "\n"
	case []*models.Todo:
		text = styles.RenderTodoList(title, v, f.Width)
	case *models.TodoPage:
		text = styles.RenderTodoList(title, v.Todos, f.Width) + styles.RenderPageFooter(v) + "\n"
	case models.Stats:
		text = styles.RenderStats(v) + "\n"
	case MutationResult:
		text = v.Message + "\n"
	case FileResult:
		text = v.Message + "\n"
	case string:
		text = v
	default:
		text = fmt.Sprintf("%+v\n", data)
	}

	_, err := io.WriteString(f.out(), text)
	return err
}
