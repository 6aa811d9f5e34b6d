package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"confdig.dev/pkg/confdig/internal/adapter"
	m "confdig.dev/pkg/confdig/internal/model"
)

// WalkMode selects what a Walker yields.
type WalkMode int

const (
	// DirectoriesOnly yields each directory before descending into it.
	DirectoriesOnly WalkMode = iota
	// FilesOnly yields every file at any depth and no directories.
	FilesOnly
)

// Walker is a lazy, single-pass, depth-first traversal over a directory
// tree backed by an explicit work stack. Each Next call produces at most
// one path; a Walker is not restartable and a fresh one re-reads the tree
// from scratch.
//
// Directories whose name starts with a dot are pruned at every depth.
// The caller-supplied exclusion list prunes directories by name, but only
// among the direct children of the root the walk started on; it is not
// carried into deeper levels. Files are never pruned, dotfiles included.
type Walker struct {
	fs      adapter.ProjectFS
	mode    WalkMode
	exclude map[string]struct{}
	stack   []*walkFrame
	done    bool
}

type walkFrame struct {
	dir     m.Path
	entries []m.DirEntry
	next    int
	read    bool
	root    bool
}

// NewWalker prepares a traversal rooted at root. No filesystem access
// happens until the first Next call.
func NewWalker(fs adapter.ProjectFS, root m.Path, excludedNames []string, mode WalkMode) *Walker {
	exclude := make(map[string]struct{}, len(excludedNames))
	for _, name := range excludedNames {
		exclude[name] = struct{}{}
	}

	return &Walker{
		fs:      fs,
		mode:    mode,
		exclude: exclude,
		stack:   []*walkFrame{{dir: root, root: true}},
	}
}

// Next produces the next path in traversal order. ok is false once the
// walk is exhausted. A directory that cannot be opened aborts the whole
// walk; the error is returned and the walker stays finished.
func (w *Walker) Next() (m.Path, bool, error) {
	if w.done {
		return "", false, nil
	}

	for len(w.stack) > 0 {
		frame := w.stack[len(w.stack)-1]

		if !frame.read {
			entries, err := w.fs.ReadDir(frame.dir)
			if err != nil {
				w.done = true
				return "", false, fmt.Errorf("reading directory %s: %w", frame.dir, err)
			}

			frame.entries = entries
			frame.read = true
		}

		if frame.next >= len(frame.entries) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		entry := frame.entries[frame.next]
		frame.next++

		if entry.Kind == m.KindDirectory {
			if w.prunedDir(filepath.Base(string(entry.Path)), frame.root) {
				continue
			}

			w.stack = append(w.stack, &walkFrame{dir: entry.Path})

			if w.mode == DirectoriesOnly {
				return entry.Path, true, nil
			}

			continue
		}

		if w.mode == FilesOnly {
			return entry.Path, true, nil
		}
	}

	w.done = true

	return "", false, nil
}

// prunedDir applies the hidden-dot rule everywhere and the exclusion list
// only at the top level of the walk.
func (w *Walker) prunedDir(name string, topLevel bool) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}

	if !topLevel {
		return false
	}

	_, excluded := w.exclude[name]

	return excluded
}
