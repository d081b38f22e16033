// Package settings holds the subcommands that manage the config file
package settings

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/config"
)

// Commands returns the config command tree, ready to be added to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{ConfigCmd()}
}

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		// No config loading: the file may not exist or parse yet
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	cmd.AddCommand(InitCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file containing the default storage, log, output,
key mapping and theme settings. The file goes to --config when given,
otherwise to $XDG_CONFIG_HOME/todos/config.yaml.

An existing file is left alone unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().String("preset", "", "Color preset to write (default, monochrome)")
	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return cli.Fail(formatter, "CONFIG_PATH_ERROR", cli.ExitError, err)
		}
		path = p
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return cli.FailWithSuggestion(formatter, "CONFIG_EXISTS", cli.ExitUsage,
			fmt.Errorf("config file %s already exists", path),
			"Pass --force to overwrite it")
	}

	cfg := config.Default()
	switch preset, _ := cmd.Flags().GetString("preset"); preset {
	case "", "default":
	case "monochrome":
		cfg.ColorScheme = config.MonochromeColorScheme()
	default:
		return cli.Fail(formatter, "INVALID_PRESET", cli.ExitUsage,
			fmt.Errorf("unknown preset %q (must be: default, monochrome)", preset))
	}

	if err := cfg.Save(path); err != nil {
		return cli.Fail(formatter, "CONFIG_WRITE_ERROR", cli.ExitError, err)
	}

	return formatter.Success(cli.FileResult{
		Path:    path,
		Message: fmt.Sprintf("Wrote config to %s", path),
	})
}
