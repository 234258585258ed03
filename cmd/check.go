package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgward.dev/pkg/pkgward/internal/domain"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

var checkPrefixFlag string
var checkWarnPrefixFlag string
var checkParallelFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Validate package declarations against the tree or a prefix",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			summary, err := workflow.Validate(context.Background(), domain.ValidateArgs{
				Root:    resolveRoot(args),
				Mode:    resolveMode(),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Threads: viper.GetInt(parallelConfigKey),
				Quiet:   viper.GetBool(quietFlagName),
				Reports: m.Path(viper.GetString(outputFlagName)),
			})
			if err != nil {
				return err
			}

			if !summary.Success() {
				return fmt.Errorf("validation failed with %d error(s) across %d file(s)",
					len(summary.Errors), summary.FilesChecked)
			}

			return nil
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&checkPrefixFlag, prefixFlagName, viper.GetString(prefixConfigKey), "required namespace prefix; enables prefix mode")
	bindFlagToConfig(cmd.Flags().Lookup(prefixFlagName), prefixConfigKey)

	cmd.Flags().StringVar(&checkWarnPrefixFlag, warnPrefixFlagName, viper.GetString(advisoryPrefixConfigKey), "advisory prefix; path-mode packages outside it produce warnings")
	bindFlagToConfig(cmd.Flags().Lookup(warnPrefixFlagName), advisoryPrefixConfigKey)

	cmd.Flags().IntVarP(&checkParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers for file checking")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
