// Package cmd provides the root command and CLI setup for confdig.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"confdig.dev/pkg/confdig/internal/adapter"
	"confdig.dev/pkg/confdig/internal/controller"
	m "confdig.dev/pkg/confdig/internal/model"
)

var fsAdapter adapter.ProjectFS
var ui controller.UI

// roots is the working/original directory pair threaded into every
// resolution call. It is computed once per execution from the root flags.
var roots m.RootPair

// workdirFlag and originFlag override the two roots; both default to the
// process working directory.
var workdirFlag string
var originFlag string

// excludeNames is a root-level flag pruning directory names during walks.
var excludeNames []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

// logFileFlag overrides the log file destination.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalProjectFS()
	ui = controller.NewSimpleUI(rootCmd)
}

const rootLongDescription = `Confdig locates and loads configuration-like files from a project tree.

It supports tools that run from a different directory than the one the user
invoked them in: every lookup tries the working root first and falls back to
the original root.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd builds a fully configured root command; tests use it to get a
// fresh instance.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confdig",
		Short: "Project configuration discovery tool",
		Long:  rootLongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			pair, err := rootPair()
			if err != nil {
				return err
			}

			roots = pair

			if err := configureSearch(searchOptions{
				Name:   configBaseName,
				Places: searchPlaces(roots),
			}); err != nil {
				return err
			}

			configureLogger(logFileFlag, verboseFlag)
			ui = controller.NewUI(cmd, controller.IsTTY(os.Stdout))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&workdirFlag, workdirFlagName, "", "working root directory (defaults to the current directory)")
	cmd.PersistentFlags().
		StringVar(&originFlag, originFlagName, "", "original root directory the tool was invoked from (defaults to the current directory)")

	cmd.PersistentFlags().
		StringArrayVarP(&excludeNames, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "directory names to skip while walking (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// rootPair resolves the working/original directory pair from the flags,
// defaulting both to the process working directory.
func rootPair() (m.RootPair, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return m.RootPair{}, fmt.Errorf("resolving current directory: %w", err)
	}

	working := workdirFlag
	if working == "" {
		working = cwd
	}

	origin := originFlag
	if origin == "" {
		origin = cwd
	}

	workingAbs, err := filepath.Abs(working)
	if err != nil {
		return m.RootPair{}, fmt.Errorf("resolving working root: %w", err)
	}

	originAbs, err := filepath.Abs(origin)
	if err != nil {
		return m.RootPair{}, fmt.Errorf("resolving original root: %w", err)
	}

	return m.RootPair{
		WorkingRoot:  m.Path(workingAbs),
		OriginalRoot: m.Path(originAbs),
	}, nil
}

// searchPlaces orders the tool's own config search the same way project
// lookups are ordered: working root first, original root as the fallback.
func searchPlaces(pair m.RootPair) []string {
	if !pair.Relocated() {
		return []string{string(pair.OriginalRoot)}
	}

	return []string{string(pair.WorkingRoot), string(pair.OriginalRoot)}
}

// excludedNames returns the effective directory-name exclusions.
func excludedNames() []string {
	return viper.GetStringSlice(excludeConfigKey)
}

// scanRoot picks the walk root: the positional argument when given,
// otherwise the working root.
func scanRoot(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return roots.WorkingRoot
}
