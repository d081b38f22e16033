package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout.
// The app is injected through the context, so GetCLIFromContext in the CLI
// package reuses it instead of opening the configured database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	stdout, _, err := ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context
// and test app, returning stdout and stderr separately
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	SetupCobraCommand(cmd, args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	ctxWithApp := cli.WithApp(ctx, testApp)
	executeErr := cmd.ExecuteContext(ctxWithApp)

	return stdout.String(), stderr.String(), executeErr
}
