package model

// Path represents a file system path.
type Path string

// EntryKind tags an entry produced during directory traversal.
type EntryKind int

const (
	// KindDirectory marks a directory entry.
	KindDirectory EntryKind = iota
	// KindFile marks a non-directory entry.
	KindFile
)

// DirEntry is an absolute path plus its kind. Entries are produced
// transiently while walking a tree and are never persisted.
type DirEntry struct {
	Path Path
	Kind EntryKind
}

// RootPair carries the two base directories used for dual-location
// configuration resolution. WorkingRoot is the directory the tool operates
// in; OriginalRoot is the directory the user invoked it from. The two may
// be equal.
type RootPair struct {
	WorkingRoot  Path
	OriginalRoot Path
}

// Relocated reports whether the tool operates somewhere other than the
// directory it was invoked from.
func (r RootPair) Relocated() bool {
	return r.WorkingRoot != r.OriginalRoot
}

// LoadResult describes a configuration file that was located and loaded.
// Data holds the deserialized contents. RelativePath is a dot-prefixed
// display path computed against the original root.
type LoadResult struct {
	AbsolutePath Path
	BaseFileName string
	Extension    string
	FileName     string
	RelativePath string
	Data         any
}
