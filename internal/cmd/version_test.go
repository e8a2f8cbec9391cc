package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/testutil"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	_, stdout := isolate(t)

	require.NoError(t, execute("version"))

	out := stdout.String()
	assert.Contains(t, out, "solanainit:")
	assert.Contains(t, out, "Toolchains:")
	assert.Contains(t, out, "cargo")
	assert.Contains(t, out, "npm")
}

func TestVersionCmd_UsesConfiguredCommands(t *testing.T) {
	_, stdout := isolate(t)
	t.Setenv("SOLANAINIT_CARGO", "solanainit-missing-cargo")

	configPath := testutil.WriteFile(t, t.TempDir(), "config.yaml", "commands:\n  npm: solanainit-missing-npm\n")

	require.NoError(t, execute("version", "--config", configPath))

	out := stdout.String()
	assert.Contains(t, out, "solanainit-missing-cargo: not found")
	assert.Contains(t, out, "solanainit-missing-npm: not found")
}

func TestVersionCmd_InvalidConfig(t *testing.T) {
	isolate(t)

	err := execute("version", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfig))
}

func TestTemplatesCmd_Execute(t *testing.T) {
	_, stdout := isolate(t)

	require.NoError(t, execute("templates"))

	out := stdout.String()
	assert.Contains(t, out, "hello_world")
	assert.Contains(t, out, "counter")
	assert.Contains(t, out, "(default)")
}
