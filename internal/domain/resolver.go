package domain

import (
	"context"
	"errors"
	"log/slog"

	"confdig.dev/pkg/confdig/internal/adapter"
	m "confdig.dev/pkg/confdig/internal/model"
)

// Resolver locates configuration candidates under an explicit root pair
// and loads the first existing one through an ordered list of loader
// strategies.
type Resolver struct {
	fs      adapter.ProjectFS
	roots   m.RootPair
	loaders []adapter.Loader
	logger  *slog.Logger
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithLoaders replaces the default loader strategy order.
func WithLoaders(loaders []adapter.Loader) ResolverOption {
	return func(r *Resolver) {
		r.loaders = loaders
	}
}

// WithLogger routes load-failure warnings to logger instead of the default
// slog logger.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver bound to fs and roots.
func NewResolver(fs adapter.ProjectFS, roots m.RootPair, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fs:      fs,
		roots:   roots,
		loaders: adapter.DefaultLoaders(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// OpenFirstExisting probes stem+ext under base in the supplied extension
// order and loads the first candidate that exists. A candidate that exists
// but fails every loader strategy ends the search: the failure is logged
// as a warning and a nil result is returned, indistinguishable from no
// candidate existing at all. The error return is reserved for context
// cancellation.
func (r *Resolver) OpenFirstExisting(ctx context.Context, base m.Path, stem string, extensions []string, diagnosticPrefix string) (*m.LoadResult, error) {
	for _, ext := range extensions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileName := stem + ext
		absPath := r.fs.Join(string(base), fileName)

		exists, err := r.fs.Exists(absPath)
		if err != nil || !exists {
			continue
		}

		display := Relativize(string(r.roots.OriginalRoot), string(absPath))

		value, ok, failures := r.tryLoad(absPath)
		if !ok {
			r.logger.Warn(diagnosticPrefix+": configuration file could not be loaded",
				"path", display,
				"error", errors.Join(failures...),
			)

			return nil, nil
		}

		return &m.LoadResult{
			AbsolutePath: absPath,
			BaseFileName: stem,
			Extension:    ext,
			FileName:     fileName,
			RelativePath: display,
			Data:         value,
		}, nil
	}

	return nil, nil
}

// OpenFromRoots resolves against the working root first when the tool
// operates relocated, then falls back to the original root unconditionally.
func (r *Resolver) OpenFromRoots(ctx context.Context, stem string, extensions []string, diagnosticPrefix string) (*m.LoadResult, error) {
	if r.roots.Relocated() {
		result, err := r.OpenFirstExisting(ctx, r.roots.WorkingRoot, stem, extensions, diagnosticPrefix)
		if err != nil || result != nil {
			return result, err
		}
	}

	return r.OpenFirstExisting(ctx, r.roots.OriginalRoot, stem, extensions, diagnosticPrefix)
}

// tryLoad reads the candidate once and feeds it to each strategy in order.
// A read failure is treated like a strategy failure so the caller's
// warn-and-null contract holds either way.
func (r *Resolver) tryLoad(absPath m.Path) (any, bool, []error) {
	raw, err := r.fs.ReadFile(absPath)
	if err != nil {
		return nil, false, []error{err}
	}

	var failures []error

	for _, loader := range r.loaders {
		value, err := loader.Load(raw)
		if err == nil {
			return value, true, nil
		}

		failures = append(failures, err)
	}

	return nil, false, failures
}
