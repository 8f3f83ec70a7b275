// Package cmd provides the root command and CLI setup for funcsnap.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"funcsnap.dev/pkg/funcsnap/internal/adapter"
	"funcsnap.dev/pkg/funcsnap/internal/controller"
	"funcsnap.dev/pkg/funcsnap/internal/domain"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var snapshotStore adapter.SnapshotStore
var discoverer domain.Discoverer
var detector domain.ChangeDetector
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every command that scans or reads snapshots.
var (
	sourceRootFlag  string
	currentFlag     string
	previousFlag    string
	excludePatterns []string
	parallelFlag    int
	logFileFlag     string
	verboseFlag     bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	snapshotStore = adapter.NewJSONSnapshotStore(fsAdapter)
	discoverer = domain.NewDiscoverer(fsAdapter, goFileAdapter)
	detector = domain.NewChangeDetector(fsAdapter, goFileAdapter)
	workflow = domain.NewWorkflow(
		snapshotStore,
		ui,
		discoverer,
		detector,
	)
}

const rootLongDescription = `Funcsnap records every function and method of a Go source tree in a JSON
snapshot and tells you whether selected functions changed since the
previous snapshot.

A typical cycle:
  funcsnap check -t internal/dq/utility.go:"<type dq.DataCheck>":AddErrorCol
  funcsnap promote`

const targetHelp = `Targets have the form file:qualifier:function, where file is relative to
the source root, qualifier is empty for top-level functions and
"<type pkg.T>" for methods of T, and function is the function name
(duplicate names such as init get a #n suffix).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "funcsnap",
		Short:        "Detect function changes between source snapshots",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its own flag set. Tests use it to
// get a clean command tree.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&sourceRootFlag, rootFlagName, "r", viper.GetString(sourceRootConfigKey), "source tree to scan")
	bindFlagToConfig(flags.Lookup(rootFlagName), sourceRootConfigKey)

	flags.StringVar(&currentFlag, currentFlagName, viper.GetString(currentConfigKey), "path of the current snapshot")
	bindFlagToConfig(flags.Lookup(currentFlagName), currentConfigKey)

	flags.StringVar(&previousFlag, previousFlagName, viper.GetString(previousConfigKey), "path of the previous (baseline) snapshot")
	bindFlagToConfig(flags.Lookup(previousFlagName), previousConfigKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files parsed in parallel")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
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

// scanArgs collects the scan settings shared by scan and check.
func scanArgs() domain.ScanArgs {
	return domain.ScanArgs{
		Root:     m.Path(viper.GetString(sourceRootConfigKey)),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		Parallel: viper.GetInt(parallelConfigKey),
		Snapshot: m.Path(viper.GetString(currentConfigKey)),
		Previous: m.Path(viper.GetString(previousConfigKey)),
	}
}
