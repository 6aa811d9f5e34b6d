package domain

import (
	"confdig.dev/pkg/confdig/internal/adapter"
	m "confdig.dev/pkg/confdig/internal/model"
)

// ListDirectories drains a DirectoriesOnly walk rooted at root into
// absolute paths. On a mid-walk filesystem error it returns the error and
// no partial results.
func ListDirectories(fs adapter.ProjectFS, root m.Path, excludedNames []string) ([]m.Path, error) {
	return drain(fs, root, excludedNames, DirectoriesOnly)
}

// ListFiles drains a FilesOnly walk rooted at root into absolute paths.
// Same error policy as ListDirectories.
func ListFiles(fs adapter.ProjectFS, root m.Path, excludedNames []string) ([]m.Path, error) {
	return drain(fs, root, excludedNames, FilesOnly)
}

func drain(fs adapter.ProjectFS, root m.Path, excludedNames []string, mode WalkMode) ([]m.Path, error) {
	walker := NewWalker(fs, root, excludedNames, mode)

	var paths []m.Path

	for {
		path, ok, err := walker.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return paths, nil
		}

		abs, err := fs.Abs(path)
		if err != nil {
			return nil, err
		}

		paths = append(paths, abs)
	}
}
