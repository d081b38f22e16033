package todo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/models"
)

// ReportCmd returns the report subcommand
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a markdown summary of the todo list",
		Long: `Print the counters followed by the pending and completed todos as a
markdown document, rendered for the terminal.

Examples:
  todos report
  todos report --raw > todos.md
`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}

	cmd.Flags().Bool("raw", false, "Print the markdown without rendering it")
	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	raw, _ := cmd.Flags().GetBool("raw")

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		svc := c.App.TodoService

		stats, err := svc.Stats(ctx)
		if err != nil {
			return cli.Fail(formatter, "STATS_ERROR", cli.ExitError, err)
		}
		pending, err := svc.GetPending(ctx)
		if err != nil {
			return cli.Fail(formatter, "TODO_FETCH_ERROR", cli.ExitError, err)
		}
		completed, err := svc.GetCompleted(ctx)
		if err != nil {
			return cli.Fail(formatter, "TODO_FETCH_ERROR", cli.ExitError, err)
		}

		markdown := BuildReport(stats, pending, completed)

		if formatter.Quiet {
			return formatter.Success(stats)
		}
		if formatter.JSON {
			return formatter.Success(map[string]any{
				"stats":    stats,
				"markdown": markdown,
			})
		}

		if raw {
			_, err := io.WriteString(formatter.Out, markdown)
			return err
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(formatter.Width),
		)
		if err != nil {
			return cli.Fail(formatter, "RENDER_ERROR", cli.ExitError, err)
		}
		rendered, err := renderer.Render(markdown)
		if err != nil {
			return cli.Fail(formatter, "RENDER_ERROR", cli.ExitError, err)
		}

		_, err = io.WriteString(formatter.Out, rendered)
		return err
	})
}

// BuildReport returns the markdown summary of the list
func BuildReport(stats models.Stats, pending, completed []*models.Todo) string {
	var b strings.Builder

	b.WriteString("# Todo report\n\n")
	b.WriteString("| Total | Completed | Pending |\n")
	b.WriteString("|------:|----------:|--------:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n", stats.Total, stats.Completed, stats.Pending)

	writeSection(&b, "Pending", pending, false)
	writeSection(&b, "Completed", completed, true)

	return b.String()
}

func writeSection(b *strings.Builder, title string, todos []*models.Todo, done bool) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(todos) == 0 {
		b.WriteString("_none_\n\n")
		return
	}
	for _, todo := range todos {
		task := escapeMarkdown(todo.Task)
		if done {
			fmt.Fprintf(b, "- [x] ~~%s~~ (#%d)\n", task, todo.ID)
		} else {
			fmt.Fprintf(b, "- [ ] %s (#%d)\n", task, todo.ID)
		}
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
