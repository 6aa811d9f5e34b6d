package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "confdig.dev/pkg/confdig/internal/model"
)

func TestClassLabel(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".js", "script"},
		{".jsx", "script"},
		{".mjs", "script"},
		{".es6", "script"},
		{".ts", "typed"},
		{".tsx", "typed"},
		{".json", ""},
		{".md", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ext+" -> "+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, classLabel(tt.ext))
		})
	}
}

func TestFileRows(t *testing.T) {
	rows := fileRows([]m.Path{"/p/a.ts", "/p/readme.md"})
	require.Len(t, rows, 2)

	assert.Equal(t, "/p/a.ts", rows[0].Path)
	assert.Equal(t, "typed", rows[0].Class)
	assert.Empty(t, rows[1].Class)
}

func TestDirectoryRows(t *testing.T) {
	rows := directoryRows([]m.Path{"/p/src", "/p/dist"})
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Empty(t, row.Class)
	}
}

func TestFilterGlobs(t *testing.T) {
	paths := []m.Path{"/proj/a.js", "/proj/sub/b.test.js", "/proj/c.ts"}

	kept, err := filterGlobs(paths, []string{"**/*.test.js"})
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"/proj/a.js", "/proj/c.ts"}, kept)

	kept, err = filterGlobs(paths, nil)
	require.NoError(t, err)
	assert.Equal(t, paths, kept)

	_, err = filterGlobs(paths, []string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `glob "["`)
}

func TestListCmd_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "app.js"))
	writeFixtureFile(t, filepath.Join(root, "app.ts"))
	writeFixtureFile(t, filepath.Join(root, "notes.md"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	writeFixtureFile(t, filepath.Join(root, "src", "index.js"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o750))
	writeFixtureFile(t, filepath.Join(root, "node_modules", "dep.js"))

	out, err := executeCommand(t, "list", root)
	require.NoError(t, err)

	assert.Contains(t, out, "app.js")
	assert.Contains(t, out, "notes.md")
	assert.Contains(t, out, "script")
	assert.Contains(t, out, "typed")
	assert.NotContains(t, out, "node_modules")

	out, err = executeCommand(t, "list", root, "--dirs")
	require.NoError(t, err)

	assert.Contains(t, out, "src")
	assert.NotContains(t, out, "app.js")
	assert.NotContains(t, out, "node_modules")

	// Glob filtering applies after the walk.
	out, err = executeCommand(t, "list", root, "--exclude-glob", "**/*.ts")
	require.NoError(t, err)

	assert.Contains(t, out, "app.js")
	assert.NotContains(t, out, "app.ts")
}
