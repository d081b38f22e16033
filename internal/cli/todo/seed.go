package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/models"
)

// SeedCmd returns the seed subcommand
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo todos",
		Long: `Insert the five demo todos in a single transaction. Either all of
them are added or none are.`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		ids, err := c.App.TodoService.AddMany(ctx, models.DemoTasks)
		if err != nil {
			return cli.Fail(formatter, "SEED_ERROR", cli.ExitError, err)
		}

		todos := make([]*models.Todo, 0, len(ids))
		for _, id := range ids {
			todo, found, err := c.App.TodoService.GetByID(ctx, id)
			if err != nil {
				return cli.Fail(formatter, "TODO_FETCH_ERROR", cli.ExitError, err)
			}
			if found {
				todos = append(todos, todo)
			}
		}

		formatter.Title = "Seeded todos"
		return formatter.Success(todos)
	})
}
