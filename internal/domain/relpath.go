package domain

import (
	"path/filepath"
	"strings"
)

// Relativize converts path into a dot-prefixed path relative to base when
// path sits under base by plain string-prefix comparison; otherwise path is
// returned unchanged. Pure and total.
func Relativize(base, path string) string {
	if !strings.HasPrefix(path, base) {
		return path
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}

	if strings.HasPrefix(rel, ".") {
		return rel
	}

	return "." + string(filepath.Separator) + rel
}
