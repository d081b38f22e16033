package todo

import (
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// confirmClear asks before completed todos are removed. Tests replace it.
var confirmClear = func(count int) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %d completed todo(s)?", count)).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// ClearCmd returns the clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed todo",
		Long: `Delete every todo marked done. Asks for confirmation unless --yes
is given; --json and --quiet imply --yes.

Examples:
  todos clear
  todos clear --yes --quiet
`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	yes, _ := cmd.Flags().GetBool("yes")

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		if !yes && !formatter.JSON && !formatter.Quiet {
			stats, err := c.App.TodoService.Stats(ctx)
			if err != nil {
				return cli.Fail(formatter, "STATS_ERROR", cli.ExitError, err)
			}
			if stats.Completed == 0 {
				return formatter.Success(cli.MutationResult{Message: "No completed todos to clear"})
			}

			confirmed, err := confirmClear(stats.Completed)
			if err != nil {
				return cli.Fail(formatter, "CONFIRM_ERROR", cli.ExitError, err)
			}
			if !confirmed {
				return formatter.Success(cli.MutationResult{Message: "Nothing cleared"})
			}
		}

		affected, err := c.App.TodoService.ClearCompleted(ctx)
		if err != nil {
			return cli.Fail(formatter, "CLEAR_ERROR", cli.ExitError, err)
		}

		return formatter.Success(cli.MutationResult{
			Affected: affected,
			Message:  fmt.Sprintf("Cleared %d completed todo(s)", affected),
		})
	})
}
