package cmd

import (
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Write the current snapshot of the source tree",
		Long: `Scan the source root, record every function and method it declares and
overwrite the current snapshot. Files that fail to parse are reported and
skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Scan(cmd.Context(), scanArgs())
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
