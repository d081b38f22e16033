package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/config"
)

// isolate points HOME and the config directory at a temp dir so the test
// never touches the user's files
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, env := range []string{"TODOS_DB", "TODOS_DRIVER", "TODOS_DSN", "TODOS_LOG_LEVEL", "TODOS_THEME_FILE"} {
		t.Setenv(env, "")
	}
	t.Cleanup(closeLog)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"add", "list", "show", "search", "done", "update", "delete", "clear", "stats", "seed", "report", "config"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("db"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestRootCmd_DBFlagPersists(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "todos.db")

	out, err := execute(t, "add", "Buy", "groceries", "--db", dbPath, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))

	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	out, err = execute(t, "stats", "--db", dbPath, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1 0 1", strings.TrimSpace(out))
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "from-config.db")
	configPath := filepath.Join(dir, "todos.yaml")
	content := "storage:\n  path: " + dbPath + "\nlog:\n  level: debug\n  file: " + filepath.Join(dir, "todos.log") + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	_, err := execute(t, "seed", "--config", configPath, "--quiet")
	require.NoError(t, err)

	out, err := execute(t, "list", "--pending", "--config", configPath, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, strings.Fields(out))

	logData, err := os.ReadFile(filepath.Join(dir, "todos.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "config loaded")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "stats", "--config", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestRootCmd_NotFoundExitCode(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "done", "7", "--db", filepath.Join(dir, "todos.db"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestConfigInit_WritesLoadableFile(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "conf", "todos.yaml")

	out, err := execute(t, "config", "init", "--config", configPath, "--preset", "monochrome", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, configPath, strings.TrimSpace(out))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.MonochromeColorScheme(), cfg.ColorScheme)
	assert.Equal(t, config.DefaultKeyMappings(), cfg.KeyMappings)

	_, err = execute(t, "config", "init", "--config", configPath)
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = execute(t, "config", "init", "--config", configPath, "--force", "--quiet")
	require.NoError(t, err)
	cfg, err = config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultColorScheme(), cfg.ColorScheme)
}

func TestConfigInit_DefaultLocation(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "config", "init", "--quiet")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "config", "todos", "config.yaml"))
	require.NoError(t, err)
}

func TestConfigInit_OverwritesBrokenFile(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("storage: [unterminated"), 0o644))

	_, err := execute(t, "config", "init", "--config", configPath, "--force", "--quiet")
	require.NoError(t, err)

	_, err = config.Load(configPath)
	require.NoError(t, err)
}
