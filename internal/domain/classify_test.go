package domain

import "testing"

func TestIsScriptLike(t *testing.T) {
	for _, ext := range []string{".js", ".jsx", ".es6", ".es", ".mjs"} {
		if !IsScriptLike(ext) {
			t.Fatalf("IsScriptLike(%q) = false", ext)
		}
	}

	for _, ext := range []string{".ts", ".tsx", ".txt", ".JS", "js", "", ".json"} {
		if IsScriptLike(ext) {
			t.Fatalf("IsScriptLike(%q) = true", ext)
		}
	}
}

func TestIsTypedScriptLike(t *testing.T) {
	for _, ext := range []string{".ts", ".tsx"} {
		if !IsTypedScriptLike(ext) {
			t.Fatalf("IsTypedScriptLike(%q) = false", ext)
		}
	}

	for _, ext := range []string{".js", ".mjs", ".TS", "ts", "", ".d.ts"} {
		if IsTypedScriptLike(ext) {
			t.Fatalf("IsTypedScriptLike(%q) = true", ext)
		}
	}
}

// The two classes never overlap, whatever the input.
func TestClassesAreMutuallyExclusive(t *testing.T) {
	exts := []string{".js", ".jsx", ".es6", ".es", ".mjs", ".ts", ".tsx", ".txt", "", ".json"}

	for _, ext := range exts {
		if IsScriptLike(ext) && IsTypedScriptLike(ext) {
			t.Fatalf("extension %q classified as both script-like and typed", ext)
		}
	}
}
