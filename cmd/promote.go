package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"funcsnap.dev/pkg/funcsnap/internal/domain"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// promoteCmd represents the promote command.
var promoteCmd = newPromoteCmd()

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote",
		Short: "Make the current snapshot the new baseline",
		Long: `Copy the current snapshot, together with its frozen sources, over the
previous snapshot. The next check compares against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Promote(cmd.Context(), domain.PromoteArgs{
				From: m.Path(viper.GetString(currentConfigKey)),
				To:   m.Path(viper.GetString(previousConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(promoteCmd)
}
