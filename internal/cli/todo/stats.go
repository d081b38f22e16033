package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// StatsCmd returns the stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show total, completed and pending counts",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	return withCLI(cmd, formatter, func(c *cli.CLI) error {
		stats, err := c.App.TodoService.Stats(ctx)
		if err != nil {
			return cli.Fail(formatter, "STATS_ERROR", cli.ExitError, err)
		}
		return formatter.Success(stats)
	})
}
