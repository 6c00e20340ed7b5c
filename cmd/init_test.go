package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)

	cmd := newTestRootCmd(newInitCmd)
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "entry_points")
	assert.Contains(t, string(contents), "locale")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	cmd := newTestRootCmd(newInitCmd)
	cmd.SetArgs([]string{"init"})

	require.Error(t, cmd.Execute())
}
