// Package domain contains the directory traversal and configuration
// resolution logic of confdig.
package domain

// Extension membership is exact and case-sensitive.
var scriptLikeExtensions = map[string]struct{}{
	".js":  {},
	".jsx": {},
	".es6": {},
	".es":  {},
	".mjs": {},
}

var typedScriptLikeExtensions = map[string]struct{}{
	".ts":  {},
	".tsx": {},
}

// buildToolConfigNames lists file names that indicate a Babel-style build
// configuration. The presence probe compares base names against this table;
// nothing is loaded from here.
var buildToolConfigNames = map[string]struct{}{
	".babelrc":          {},
	".babelrc.cjs":      {},
	".babelrc.js":       {},
	".babelrc.mjs":      {},
	".babelrc.json":     {},
	"babel.config.cjs":  {},
	"babel.config.js":   {},
	"babel.config.json": {},
	"babel.config.mjs":  {},
}

// typeCheckerConfigNames lists file names that indicate a TypeScript-style
// checker configuration.
var typeCheckerConfigNames = map[string]struct{}{
	"tsconfig.json": {},
	"jsconfig.json": {},
}

// IsScriptLike reports whether ext names a plain script source kind.
func IsScriptLike(ext string) bool {
	_, ok := scriptLikeExtensions[ext]
	return ok
}

// IsTypedScriptLike reports whether ext names a typed script source kind.
func IsTypedScriptLike(ext string) bool {
	_, ok := typedScriptLikeExtensions[ext]
	return ok
}
