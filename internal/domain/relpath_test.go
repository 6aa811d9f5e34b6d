package domain

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRelativize(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"under base", "/home/user/proj", "/home/user/proj/config.json", "." + sep + "config.json"},
		{"nested under base", "/home/user/proj", "/home/user/proj/a/b.js", "." + sep + filepath.Join("a", "b.js")},
		{"equal to base", "/home/user/proj", "/home/user/proj", "."},
		{"outside base", "/home/user/proj", "/etc/config.json", "/etc/config.json"},
		// The guard is a plain string prefix, not segment-aware: a sibling
		// sharing the prefix still gets relativized.
		{"prefix but not child", "/home/user/proj", "/home/user/project/x", ".." + sep + filepath.Join("project", "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relativize(tt.base, tt.path)
			if got != tt.want {
				t.Fatalf("Relativize(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}

func TestRelativize_NeverStartsWithBareSeparator(t *testing.T) {
	sep := string(filepath.Separator)

	got := Relativize("/base", "/base/sub/file.ts")

	if strings.HasPrefix(got, sep) {
		t.Fatalf("Relativize() = %q starts with the path separator", got)
	}

	if !strings.HasPrefix(got, ".") {
		t.Fatalf("Relativize() = %q lacks the current-directory marker", got)
	}
}
