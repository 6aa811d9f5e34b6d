package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"confdig.dev/pkg/confdig/internal/controller"
	"confdig.dev/pkg/confdig/internal/domain"
	m "confdig.dev/pkg/confdig/internal/model"
)

// dirsFlag switches the list command to directories.
var dirsFlag bool

// excludeGlobs filters listed files by glob patterns after the walk; the
// walk itself prunes by directory name only.
var excludeGlobs []string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List project files or directories",
		Long: `List the files (default) or directories under a root, honoring the
directory-name exclusions. File rows are annotated with their source class.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := scanRoot(args)

			if dirsFlag {
				dirs, err := domain.ListDirectories(fsAdapter, root, excludedNames())
				if err != nil {
					return err
				}

				return ui.DisplayListing(cmd.Context(), directoryRows(dirs))
			}

			files, err := domain.ListFiles(fsAdapter, root, excludedNames())
			if err != nil {
				return err
			}

			files, err = filterGlobs(files, viper.GetStringSlice(excludeGlobConfigKey))
			if err != nil {
				return err
			}

			return ui.DisplayListing(cmd.Context(), fileRows(files))
		},
	}

	cmd.Flags().BoolVar(&dirsFlag, dirsFlagName, false, "list directories instead of files")

	cmd.Flags().StringArrayVar(&excludeGlobs, excludeGlobFlagName, viper.GetStringSlice(excludeGlobConfigKey), "exclude files matching glob (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeGlobFlagName), excludeGlobConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func directoryRows(paths []m.Path) []controller.ListingRow {
	rows := make([]controller.ListingRow, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, controller.ListingRow{Path: string(path)})
	}

	return rows
}

func fileRows(paths []m.Path) []controller.ListingRow {
	rows := make([]controller.ListingRow, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, controller.ListingRow{
			Path:  string(path),
			Class: classLabel(filepath.Ext(string(path))),
		})
	}

	return rows
}

func classLabel(ext string) string {
	switch {
	case domain.IsScriptLike(ext):
		return "script"
	case domain.IsTypedScriptLike(ext):
		return "typed"
	default:
		return ""
	}
}

// filterGlobs drops files matching any pattern. Patterns are matched
// against slash-separated full paths.
func filterGlobs(paths []m.Path, patterns []string) ([]m.Path, error) {
	if len(patterns) == 0 {
		return paths, nil
	}

	kept := make([]m.Path, 0, len(paths))

nextPath:
	for _, path := range paths {
		for _, pattern := range patterns {
			matched, err := doublestar.Match(pattern, filepath.ToSlash(string(path)))
			if err != nil {
				return nil, fmt.Errorf("glob %q: %w", pattern, err)
			}

			if matched {
				continue nextPath
			}
		}

		kept = append(kept, path)
	}

	return kept, nil
}
