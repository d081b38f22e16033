package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <task...>",
		Short: "Add a new todo",
		Long: `Add a new pending todo. All arguments are joined into the task text.

Examples:
  # Simple todo (human-readable output)
  todos add Buy groceries

  # JSON output for agents
  todos add "Do math homework" --json

  # Quiet mode for bash capture
  TODO_ID=$(todos add Exercise --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		id, err := c.App.TodoService.Add(ctx, cli.TaskText(args))
		if err != nil {
			return cli.Fail(formatter, "ADD_ERROR", cli.ExitError, err)
		}

		todo, found, err := c.App.TodoService.GetByID(ctx, id)
		if err != nil {
			return cli.Fail(formatter, "TODO_FETCH_ERROR", cli.ExitError, err)
		}
		if !found {
			return cli.Fail(formatter, "TODO_NOT_FOUND", cli.ExitNotFound, fmt.Errorf("todo %d not found after insert", id))
		}

		return formatter.Success(todo)
	})
}
