package todo

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/models"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long: `List todos ordered by id, or newest first with --by-date.

Passing --page, --limit or --search switches to a paginated listing,
newest first, that can be combined with --pending or --completed.

Examples:
  todos list
  todos list --pending
  todos list --by-date
  todos list --completed --page=2 --limit=20 --json
  todos list --search=home
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Bool("pending", false, "Only todos not yet done")
	cmd.Flags().Bool("completed", false, "Only todos marked done")
	cmd.Flags().Bool("by-date", false, "Newest first")
	cmd.Flags().Int("page", 0, "Page number (starts at 1)")
	cmd.Flags().Int("limit", 0, fmt.Sprintf("Page size (default %d, max %d)", models.DefaultPageLimit, models.MaxPageLimit))
	cmd.Flags().String("search", "", "Only todos whose task contains this text")

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	pending, _ := cmd.Flags().GetBool("pending")
	completed, _ := cmd.Flags().GetBool("completed")
	byDate, _ := cmd.Flags().GetBool("by-date")

	filter, err := cli.StatusFilter(pending, completed)
	if err != nil {
		return cli.Fail(formatter, "INVALID_FLAGS", cli.ExitUsage, err)
	}

	paged := cmd.Flags().Changed("page") || cmd.Flags().Changed("limit") || cmd.Flags().Changed("search")
	if byDate && filter != nil && !paged {
		return cli.Fail(formatter, "INVALID_FLAGS", cli.ExitUsage,
			errors.New("--by-date cannot be combined with --pending or --completed"))
	}

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		svc := c.App.TodoService

		if paged {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			search, _ := cmd.Flags().GetString("search")

			result, err := svc.List(ctx, todoservice.ListOptions{
				Done:   filter,
				Search: search,
				Page:   page,
				Limit:  limit,
			})
			if err != nil {
				return cli.Fail(formatter, "TODO_FETCH_ERROR", cli.ExitError, err)
			}
			formatter.Title = listTitle(filter, false)
			return formatter.Success(result)
		}

		var todos []*models.Todo
		switch {
		case byDate:
			todos, err = svc.GetByDate(ctx)
		case pending:
			todos, err = svc.GetPending(ctx)
		case completed:
			todos, err = svc.GetCompleted(ctx)
		default:
			todos, err = svc.GetAll(ctx)
		}
		if err != nil {
			return cli.Fail(formatter, "TODO_FETCH_ERROR", cli.ExitError, err)
		}

		formatter.Title = listTitle(filter, byDate)
		return formatter.Success(todos)
	})
}

func listTitle(filter *bool, byDate bool) string {
	switch {
	case byDate:
		return "Todos (newest first)"
	case filter == nil:
		return "All todos"
	case *filter:
		return "Completed todos"
	default:
		return "Pending todos"
	}
}
