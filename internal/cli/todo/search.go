package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// SearchCmd returns the search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <keyword...>",
		Short: "Find todos whose task contains a keyword",
		Long: `Find todos whose task text contains the keyword, case-insensitively
for ASCII letters. An empty keyword matches every todo.

Examples:
  todos search home
  todos search "math homework" --json
`,
		RunE: runSearch,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	keyword := cli.TaskText(args)

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		todos, err := c.App.TodoService.Search(ctx, keyword)
		if err != nil {
			return cli.Fail(formatter, "SEARCH_ERROR", cli.ExitError, err)
		}

		formatter.Title = fmt.Sprintf("Todos matching %q", keyword)
		return formatter.Success(todos)
	})
}
