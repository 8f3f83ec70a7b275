package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default funcsnap.yaml configuration file",
		Long: `Create a funcsnap.yaml in the current working directory holding the source
root, snapshot locations, scan settings and check targets currently in effect.
Targets listed under check.targets are used when check runs without --target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s (current snapshot %s, baseline %s)\n",
				targetPath, viper.GetString(currentConfigKey), viper.GetString(previousConfigKey))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
