package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"funcsnap.dev/pkg/funcsnap/internal/domain"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the scanned directory structure",
		Long:  "Scan the source root without writing a snapshot and print its directories and Go files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshots := []m.Path{
				m.Path(viper.GetString(currentConfigKey)),
				m.Path(viper.GetString(previousConfigKey)),
			}

			return workflow.Tree(cmd.Context(), domain.TreeArgs{
				Root:      m.Path(viper.GetString(sourceRootConfigKey)),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Parallel:  viper.GetInt(parallelConfigKey),
				Snapshots: snapshots,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
