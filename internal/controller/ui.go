// Package controller provides output adapters for displaying scan and
// resolution results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "confdig.dev/pkg/confdig/internal/model"
)

// ListingRow is one line of list output. Class is empty for directories
// and for files with an unrecognized extension.
type ListingRow struct {
	Path  string
	Class string
}

// ProbeSummary holds the outcome of the dual presence probe for one root.
type ProbeSummary struct {
	Root              m.Path
	BuildToolConfig   bool
	TypeCheckerConfig bool
}

// UI defines the interface for displaying results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayListing(ctx context.Context, rows []ListingRow) error
	DisplayProbe(ctx context.Context, summary ProbeSummary) error
	DisplayResolution(ctx context.Context, stem string, result *m.LoadResult) error
}

// NewUI selects the interactive display when stdout is a terminal and the
// plain printer otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
