package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgward.dev/pkg/pkgward/internal/controller"
	"pkgward.dev/pkg/pkgward/internal/domain"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

var deployBumpFlag string
var deployReleaseVersionFlag string
var deployRemoteFlag string

// deployCmd represents the deploy command.
var deployCmd = newDeployCmd()

func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [root]",
		Short: "Validate, bump the version, then commit, tag and push",
		Long:  deployLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			current := viper.GetString(projectVersionKey)

			version, err := resolveReleaseVersion(ctx, current)
			if err != nil {
				return err
			}

			summary, err := workflow.Deploy(ctx, domain.DeployArgs{
				ValidateArgs: domain.ValidateArgs{
					Root:    resolveRoot(args),
					Mode:    resolveMode(),
					Exclude: viper.GetStringSlice(excludeConfigKey),
					Threads: viper.GetInt(parallelConfigKey),
					Reports: m.Path(viper.GetString(outputFlagName)),
				},
				Project: resolveProjectName(),
				Version: version,
				Remote:  viper.GetString(deployRemoteKey),
			})
			if err != nil {
				return err
			}

			persistVersion(version)

			cmd.Printf("Released %s %s (%d file(s) validated)\n",
				resolveProjectName(), version, summary.FilesChecked)

			return nil
		},
	}

	configureDeployFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(deployCmd)
}

func configureDeployFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&deployBumpFlag, "bump", "", "version component to bump without prompting (patch, minor or major)")
	cmd.Flags().StringVar(&deployReleaseVersionFlag, "release-version", "", "explicit version to release, skipping bump logic")
	cmd.Flags().StringVar(&deployRemoteFlag, "remote", viper.GetString(deployRemoteKey), "git remote to push to")
	bindFlagToConfig(cmd.Flags().Lookup("remote"), deployRemoteKey)
}

// resolveReleaseVersion picks the version to release: an explicit flag
// wins, then a non-interactive bump level, then the interactive prompt.
func resolveReleaseVersion(ctx context.Context, current string) (string, error) {
	if deployReleaseVersionFlag != "" {
		return deployReleaseVersionFlag, nil
	}

	if deployBumpFlag != "" {
		level, err := domain.ParseBumpLevel(deployBumpFlag)
		if err != nil {
			return "", err
		}

		return domain.BumpVersion(current, level)
	}

	choices, err := bumpChoices(current)
	if err != nil {
		return "", err
	}

	return ui.PromptVersionBump(ctx, current, choices)
}

func bumpChoices(current string) ([]controller.BumpChoice, error) {
	levels := []domain.BumpLevel{domain.BumpPatch, domain.BumpMinor, domain.BumpMajor}
	choices := make([]controller.BumpChoice, 0, len(levels))

	for _, level := range levels {
		next, err := domain.BumpVersion(current, level)
		if err != nil {
			return nil, err
		}

		choices = append(choices, controller.BumpChoice{Label: string(level), Version: next})
	}

	return choices, nil
}

func resolveProjectName() string {
	if name := viper.GetString(projectNameKey); name != "" {
		return name
	}

	wd, err := os.Getwd()
	if err != nil {
		return "unknown"
	}

	return filepath.Base(wd)
}

// persistVersion records the released version back into the config file.
// A missing config file is not fatal; the release itself already happened.
func persistVersion(version string) {
	viper.Set(projectVersionKey, version)

	if err := viper.WriteConfig(); err != nil {
		if err := viper.SafeWriteConfigAs(filepath.Join(configFolderPath, configFileName)); err != nil {
			slog.Warn("could not persist released version to config", "version", version, "error", err)
		}
	}
}
