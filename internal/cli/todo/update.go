package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <todo_id> <task...>",
		Short: "Replace the task text of a todo",
		Long: `Replace the task text of a todo. The id, done flag and creation time
are kept.

Examples:
  todos update 2 Do physics homework
  todos update 2 "Read two books" --quiet
`,
		Args: cobra.MinimumNArgs(2),
		RunE: runUpdate,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseTodoID(args[0])
	if err != nil {
		return cli.Fail(formatter, "INVALID_ID", cli.ExitUsage, err)
	}

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		affected, err := c.App.TodoService.UpdateTask(ctx, id, cli.TaskText(args[1:]))
		if err != nil {
			return cli.Fail(formatter, "UPDATE_ERROR", cli.ExitError, err)
		}
		if affected == 0 {
			return notFound(formatter, id)
		}

		return formatter.Success(cli.MutationResult{
			ID:       id,
			Affected: affected,
			Message:  fmt.Sprintf("Todo %d updated", id),
		})
	})
}
