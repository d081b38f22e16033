// Package cmd assembles the todos command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/settings"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/cli/todo"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/launcher"
	"github.com/thenoetrevino/todos/internal/logging"
)

// logCloser releases the log file opened by the persistent pre-run
var logCloser io.Closer

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todos",
		Short: "todos - a persistent task list",
		Long: `todos keeps a task list in a local SQLite database (or Postgres).

Run without arguments to open the interactive list, or use the
subcommands below from scripts. Every subcommand accepts --json and
--quiet.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runTUI,
	}

	rootCmd.PersistentFlags().String("db", "", "SQLite database file (overrides config and "+config.EnvDB+")")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/todos/config.yaml)")

	rootCmd.AddCommand(todo.Commands()...)
	rootCmd.AddCommand(settings.Commands()...)

	return rootCmd
}

// setup loads the config, applies flag overrides, and starts logging
func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Storage.Driver = "sqlite"
		cfg.Storage.Path = dbPath
	}

	closeLog()
	closer, err := logging.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		// Logging is best effort; commands still run
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
	} else {
		logCloser = closer
	}

	styles.Init(cfg.ColorScheme)
	slog.Debug("config loaded", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithConfig(ctx, cfg))
	return nil
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return launcher.Launch(ctx, cliInstance.App, cliInstance.Config)
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	defer closeLog()

	if err == nil {
		return cli.ExitSuccess
	}

	// CodedErrors were already printed by the formatter
	var coded *cli.CodedError
	if !errors.As(err, &coded) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
