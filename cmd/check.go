package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"funcsnap.dev/pkg/funcsnap/internal/domain"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

var targetsFlag []string
var diffFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether target functions changed since the previous snapshot",
		Long: `Take a fresh current snapshot, then compare every target against the
previous snapshot and print one line per target.

` + targetHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := parseTargets(viper.GetStringSlice(targetsConfigKey))
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				ScanArgs: scanArgs(),
				Targets:  targets,
				ShowDiff: viper.GetBool(diffConfigKey),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&targetsFlag, targetFlagName, "t", viper.GetStringSlice(targetsConfigKey), "function to check as file:qualifier:function (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(targetFlagName), targetsConfigKey)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, viper.GetBool(diffConfigKey), "print a unified diff for changed functions")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffConfigKey)
}

func parseTargets(values []string) ([]m.LookupPath, error) {
	targets := make([]m.LookupPath, 0, len(values))

	for _, value := range values {
		target, err := m.ParseLookupPath(value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", targetFlagName, err)
		}

		targets = append(targets, target)
	}

	return targets, nil
}
