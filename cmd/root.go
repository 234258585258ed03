// Package cmd provides the root command and CLI setup for pkgward.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkgward.dev/pkg/pkgward/internal/adapter"
	"pkgward.dev/pkg/pkgward/internal/controller"
	"pkgward.dev/pkg/pkgward/internal/domain"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var registry adapter.RegistryAdapter
var vcs adapter.VCSAdapter
var scanner domain.Scanner
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that
// read/write run summaries.
var reportsOutputDirFlag string

// quietFlag suppresses incremental progress output when set.
var quietFlag bool

// verboseFlag raises the log level to Debug when set.
var verboseFlag bool

// excludePatterns is a root-level flag that filters files for applicable
// commands.
var excludePatterns []string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scanner = domain.NewScanner(fsAdapter)
	reportStore = adapter.NewLocalReportStore()
	registry = adapter.NewSimulatedRegistryAdapter()
	vcs = adapter.NewGitVCSAdapter(".")
	workflow = domain.NewWorkflow(
		fsAdapter,
		scanner,
		reportStore,
		registry,
		vcs,
		ui,
	)
}

const rootLongDescription = `Pkgward checks that the package declaration inside each Java/Kotlin source
file is consistent with either the file's position in the directory tree
(path mode) or an externally supplied namespace prefix (prefix mode).

It is meant to run as a pre-commit or pre-release gate: the check exits
non-zero when any file violates the active policy, and the deploy command
refuses to tag a release until the tree is clean.`

const checkLongDescription = `Validate package declarations under the given root (default: src).

Without --prefix every file's package must exactly mirror its directory
path relative to the root (path mode). With --prefix every file's package
must equal the prefix or start with it followed by a dot, and directory
layout is ignored (prefix mode).`

const deployLongDescription = `Run a quiet validation pass and, when it succeeds, bump the project
version, validate the release against the registry, and commit, tag and
push through git.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pkgward",
		Short: "Package declaration consistency checker",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run summaries",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&quietFlag, quietFlagName, "q", viper.GetBool(quietFlagName), "suppress incremental progress output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(quietFlagName), quietFlagName)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveRoot returns the scan root from the positional argument or the
// configured default.
func resolveRoot(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(srcConfigKey))
}

// resolveMode builds the validation mode for a run. A configured prefix
// selects prefix mode; otherwise path mode is used, optionally carrying
// the advisory prefix for soft warnings.
func resolveMode() domain.Mode {
	if prefix := viper.GetString(prefixConfigKey); prefix != "" {
		return domain.PrefixMode{Prefix: m.Namespace(prefix)}
	}

	return domain.PathMode{AdvisoryPrefix: m.Namespace(viper.GetString(advisoryPrefixConfigKey))}
}
