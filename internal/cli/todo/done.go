package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <todo_id>",
		Short: "Mark a todo as done",
		Long: `Mark a todo as done. Marking a todo that is already done succeeds
and leaves it unchanged.

Examples:
  todos done 3
  todos done 3 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDone,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseTodoID(args[0])
	if err != nil {
		return cli.Fail(formatter, "INVALID_ID", cli.ExitUsage, err)
	}

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		affected, err := c.App.TodoService.MarkDone(ctx, id)
		if err != nil {
			return cli.Fail(formatter, "DONE_ERROR", cli.ExitError, err)
		}
		if affected == 0 {
			return notFound(formatter, id)
		}

		return formatter.Success(cli.MutationResult{
			ID:       id,
			Affected: affected,
			Message:  fmt.Sprintf("Todo %d marked done", id),
		})
	})
}
