package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"confdig.dev/pkg/confdig/internal/adapter"
	"confdig.dev/pkg/confdig/internal/domain"
)

// extensionsFlagValue is the ordered candidate extension list for resolve.
var extensionsFlagValue []string

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <stem>",
		Short: "Locate and load a configuration file by stem",
		Long: `Probe stem+extension candidates under the working root, falling back to
the original root, and load the first candidate that exists. A candidate
that exists but cannot be parsed ends the search with a logged warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stem := args[0]
			extensions := viper.GetStringSlice(extensionsConfigKey)

			resolver := domain.NewResolver(fsAdapter, roots,
				domain.WithLoaders(loadersFor(extensions)),
			)

			result, err := resolver.OpenFromRoots(cmd.Context(), stem, extensions, "resolve "+stem)
			if err != nil {
				return err
			}

			return ui.DisplayResolution(cmd.Context(), stem, result)
		},
	}

	cmd.Flags().StringArrayVarP(&extensionsFlagValue, extensionsFlagName, "e", viper.GetStringSlice(extensionsConfigKey), "candidate extensions in priority order")
	bindFlagToConfig(cmd.Flags().Lookup(extensionsFlagName), extensionsConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

// loadersFor appends the YAML strategy when any candidate is a YAML file.
func loadersFor(extensions []string) []adapter.Loader {
	loaders := adapter.DefaultLoaders()

	for _, ext := range extensions {
		if ext == ".yaml" || ext == ".yml" {
			return append(loaders, adapter.YAMLLoader{})
		}
	}

	return loaders
}
