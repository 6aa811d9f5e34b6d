// Package adapter contains filesystem and loading infrastructure for the
// confdig CLI.
package adapter

import (
	"path/filepath"

	"github.com/spf13/afero"

	m "confdig.dev/pkg/confdig/internal/model"
)

// ProjectFS abstracts the filesystem operations the domain layer relies on
// when scanning project trees and probing configuration candidates. It
// hides direct `os` access so traversal and resolution logic can be tested
// against an in-memory filesystem.
type ProjectFS interface {
	// ReadDir returns the direct entries of dir as joined paths, in the
	// order the filesystem reports them, without sorting. Opening the
	// directory may fail.
	ReadDir(dir m.Path) ([]m.DirEntry, error)

	// Exists reports whether path refers to an existing file or directory.
	Exists(path m.Path) (bool, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Abs resolves path to its absolute form.
	Abs(path m.Path) (m.Path, error)

	// Join joins path elements into a single path.
	Join(elem ...string) m.Path
}

// AferoProjectFS is the concrete ProjectFS backed by an afero filesystem.
type AferoProjectFS struct {
	fs afero.Fs
}

// NewLocalProjectFS returns a ProjectFS over the host filesystem.
func NewLocalProjectFS() *AferoProjectFS {
	return &AferoProjectFS{fs: afero.NewOsFs()}
}

// NewAferoProjectFS wraps an arbitrary afero filesystem, typically a
// memory-backed one in tests.
func NewAferoProjectFS(fs afero.Fs) *AferoProjectFS {
	return &AferoProjectFS{fs: fs}
}

// ReadDir opens dir, drains its entries and releases the handle before
// returning.
func (a *AferoProjectFS) ReadDir(dir m.Path) ([]m.DirEntry, error) {
	f, err := a.fs.Open(string(dir))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	infos, err := f.Readdir(-1)
	if err != nil {
		return nil, err
	}

	entries := make([]m.DirEntry, 0, len(infos))

	for _, info := range infos {
		kind := m.KindFile
		if info.IsDir() {
			kind = m.KindDirectory
		}

		entries = append(entries, m.DirEntry{
			Path: a.Join(string(dir), info.Name()),
			Kind: kind,
		})
	}

	return entries, nil
}

// Exists reports whether path refers to an existing entry.
func (a *AferoProjectFS) Exists(path m.Path) (bool, error) {
	return afero.Exists(a.fs, string(path))
}

// ReadFile loads file contents from disk.
func (a *AferoProjectFS) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// Abs resolves path to its absolute canonical form.
func (a *AferoProjectFS) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// Join joins path elements into a single path.
func (a *AferoProjectFS) Join(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
