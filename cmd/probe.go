package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"confdig.dev/pkg/confdig/internal/controller"
	"confdig.dev/pkg/confdig/internal/domain"
)

// probeCmd represents the probe command.
var probeCmd = newProbeCmd()

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe [root]",
		Short: "Check whether build tool or type checker configs exist",
		Long: `Walk the tree under a root and report whether any Babel-style build
configuration or TypeScript-style checker configuration is present.
Each probe stops at its first match.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := scanRoot(args)
			exclude := excludedNames()

			var buildTool, typeChecker bool

			// The two probes are independent walks; run them side by side.
			var g errgroup.Group

			g.Go(func() error {
				found, err := domain.HasBuildToolConfig(fsAdapter, root, exclude)
				buildTool = found

				return err
			})

			g.Go(func() error {
				found, err := domain.HasTypeCheckerConfig(fsAdapter, root, exclude)
				typeChecker = found

				return err
			})

			if err := g.Wait(); err != nil {
				return err
			}

			return ui.DisplayProbe(cmd.Context(), controller.ProbeSummary{
				Root:              root,
				BuildToolConfig:   buildTool,
				TypeCheckerConfig: typeChecker,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
