package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <todo_id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseTodoID(args[0])
	if err != nil {
		return cli.Fail(formatter, "INVALID_ID", cli.ExitUsage, err)
	}

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		affected, err := c.App.TodoService.Delete(ctx, id)
		if err != nil {
			return cli.Fail(formatter, "DELETE_ERROR", cli.ExitError, err)
		}
		if affected == 0 {
			return notFound(formatter, id)
		}

		return formatter.Success(cli.MutationResult{
			ID:       id,
			Affected: affected,
			Message:  fmt.Sprintf("Todo %d deleted", id),
		})
	})
}
