package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <todo_id>",
		Short: "Show one todo",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseTodoID(args[0])
	if err != nil {
		return cli.Fail(formatter, "INVALID_ID", cli.ExitUsage, err)
	}

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		todo, found, err := c.App.TodoService.GetByID(ctx, id)
		if err != nil {
			return cli.Fail(formatter, "TODO_FETCH_ERROR", cli.ExitError, err)
		}
		if !found {
			return notFound(formatter, id)
		}
		return formatter.Success(todo)
	})
}

func notFound(formatter *cli.OutputFormatter, id int) error {
	return cli.FailWithSuggestion(formatter, "TODO_NOT_FOUND", cli.ExitNotFound,
		fmt.Errorf("todo %d not found", id),
		"Use 'todos list' to see existing todos")
}
