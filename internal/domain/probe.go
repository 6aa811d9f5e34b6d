package domain

import (
	"path/filepath"

	"confdig.dev/pkg/confdig/internal/adapter"
	m "confdig.dev/pkg/confdig/internal/model"
)

// HasBuildToolConfig reports whether any file under root carries one of
// the Babel-style configuration names. The walk stops on the first hit.
func HasBuildToolConfig(fs adapter.ProjectFS, root m.Path, excludedNames []string) (bool, error) {
	return probeNames(fs, root, excludedNames, buildToolConfigNames)
}

// HasTypeCheckerConfig reports whether any file under root carries one of
// the TypeScript-style checker configuration names.
func HasTypeCheckerConfig(fs adapter.ProjectFS, root m.Path, excludedNames []string) (bool, error) {
	return probeNames(fs, root, excludedNames, typeCheckerConfigNames)
}

// probeNames compares base file names, not full paths, against the table.
// A filesystem error during the walk propagates as a failure.
func probeNames(fs adapter.ProjectFS, root m.Path, excludedNames []string, names map[string]struct{}) (bool, error) {
	walker := NewWalker(fs, root, excludedNames, FilesOnly)

	for {
		path, ok, err := walker.Next()
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}

		if _, hit := names[filepath.Base(string(path))]; hit {
			return true, nil
		}
	}
}
