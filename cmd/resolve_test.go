package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadersFor(t *testing.T) {
	loaders := loadersFor([]string{".json", ".js"})
	require.Len(t, loaders, 2)

	loaders = loadersFor([]string{".json", ".yaml"})
	require.Len(t, loaders, 3)
	assert.Equal(t, "yaml", loaders[2].Name())

	loaders = loadersFor([]string{".yml"})
	require.Len(t, loaders, 3)
}

func TestResolveCmd_EndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.json"), []byte(`{"name":"demo"}`), 0o600))

	out, err := executeCommand(t, "resolve", "app", "--workdir", root, "--origin", root)
	require.NoError(t, err)

	assert.Contains(t, out, "file: app.json")
	assert.Contains(t, out, "path: ./app.json")
	assert.Contains(t, out, "name: demo")
}

func TestResolveCmd_NothingFound(t *testing.T) {
	root := t.TempDir()

	out, err := executeCommand(t, "resolve", "missing", "--workdir", root, "--origin", root)
	require.NoError(t, err)

	assert.Contains(t, out, `no usable configuration found for "missing"`)
}

func TestResolveCmd_RequiresStem(t *testing.T) {
	_, err := executeCommand(t, "resolve")
	require.Error(t, err)
}
