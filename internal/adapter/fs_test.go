package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	m "confdig.dev/pkg/confdig/internal/model"
)

func TestLocalProjectFS_ReadDir(t *testing.T) {
	fs := NewLocalProjectFS()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.js"), "{}")
	mustMkdir(t, filepath.Join(root, "sub"))

	entries, err := fs.ReadDir(m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("ReadDir() returned %d entries, want 2", len(entries))
	}

	kinds := map[string]m.EntryKind{}
	for _, entry := range entries {
		kinds[filepath.Base(string(entry.Path))] = entry.Kind
	}

	if kinds["a.js"] != m.KindFile || kinds["sub"] != m.KindDirectory {
		t.Fatalf("ReadDir() misreported entry kinds: %v", kinds)
	}
}

func TestLocalProjectFS_ReadDirMissing(t *testing.T) {
	fs := NewLocalProjectFS()

	if _, err := fs.ReadDir(m.Path(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatalf("ReadDir() on a missing directory did not fail")
	}
}

func TestLocalProjectFS_Exists(t *testing.T) {
	fs := NewLocalProjectFS()

	root := t.TempDir()
	path := filepath.Join(root, "config.json")
	writeTestFile(t, path, "{}")

	exists, err := fs.Exists(m.Path(path))
	if err != nil || !exists {
		t.Fatalf("Exists() = (%v, %v), want (true, nil)", exists, err)
	}

	exists, err = fs.Exists(m.Path(filepath.Join(root, "other.json")))
	if err != nil || exists {
		t.Fatalf("Exists() = (%v, %v), want (false, nil)", exists, err)
	}
}

func TestLocalProjectFS_ReadFile(t *testing.T) {
	fs := NewLocalProjectFS()

	root := t.TempDir()
	path := filepath.Join(root, "config.json")
	content := `{"a":1}`
	writeTestFile(t, path, content)

	got, err := fs.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalProjectFS_AbsAndJoin(t *testing.T) {
	fs := NewLocalProjectFS()

	abs, err := fs.Abs("relative/dir")
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}

	if !filepath.IsAbs(string(abs)) {
		t.Fatalf("Abs() = %s is not absolute", abs)
	}

	if got := fs.Join("a", "b", "c.js"); got != m.Path(filepath.Join("a", "b", "c.js")) {
		t.Fatalf("Join() = %s", got)
	}
}

func TestAferoProjectFS_MemoryBacked(t *testing.T) {
	memfs := afero.NewMemMapFs()
	if err := afero.WriteFile(memfs, "/proj/config.json", []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	fs := NewAferoProjectFS(memfs)

	exists, err := fs.Exists("/proj/config.json")
	if err != nil || !exists {
		t.Fatalf("Exists() = (%v, %v) on the memory filesystem", exists, err)
	}

	entries, err := fs.ReadDir("/proj")
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadDir() = (%d entries, %v)", len(entries), err)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o750); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}
