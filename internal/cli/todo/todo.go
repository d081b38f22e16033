// Package todo holds the cobra subcommands that operate on the todo list
package todo

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// Commands returns every todo subcommand, ready to be added to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		ShowCmd(),
		SearchCmd(),
		DoneCmd(),
		UpdateCmd(),
		DeleteCmd(),
		ClearCmd(),
		StatsCmd(),
		SeedCmd(),
		ReportCmd(),
	}
}

// withCLI opens the CLI for the command, runs fn and closes it again
func withCLI(cmd *cobra.Command, formatter *cli.OutputFormatter, fn func(*cli.CLI) error) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(cliInstance)
}
