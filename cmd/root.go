// Package cmd provides the root command and CLI setup for markhound.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"markhound.dev/pkg/markhound/internal/adapter"
	"markhound.dev/pkg/markhound/internal/controller"
	"markhound.dev/pkg/markhound/internal/domain"
	m "markhound.dev/pkg/markhound/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

// excludeMarkersFlag holds the comma-separated marker list overriding the
// built-in default set.
var excludeMarkersFlag string

// packagesFlag lists directories scanned in place of the positional root.
var packagesFlag []string

// jobsFlag is the number of files analyzed in parallel.
var jobsFlag int

// reportsOutputDirFlag is where scan reports are written; empty disables
// persistence.
var reportsOutputDirFlag string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = newUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const rootLongDescription = `Markhound scans a tree of Python test files and reports every test function
that carries none of the configured pytest markers, so CI can enforce that
every test is explicitly categorized.

A test counts as marked when one of the excluded markers appears in its own
decorators or in the decorators of an enclosing class.`

const checkLongDescription = `Scan the given directory (default: tests) for test functions that carry
none of the excluded markers.

Exits 0 with a confirmation message when every test is categorized; exits 1
and lists each unmarked test as path::function on stderr otherwise.`

const listLongDescription = `List scanned Python files with their test and unmarked-test counts.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markhound",
		Short: "Find Python tests without category markers",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(verboseFlagName))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&excludeMarkersFlag, excludeMarkersFlagName, "m",
		viper.GetString(excludeMarkersConfigKey),
		"comma-separated markers a test must carry to count as categorized",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeMarkersFlagName), excludeMarkersConfigKey)

	cmd.PersistentFlags().StringSliceVar(
		&packagesFlag, packagesFlagName,
		viper.GetStringSlice(packagesConfigKey),
		"comma-separated package directories to scan instead of the root (missing ones are skipped)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(packagesFlagName), packagesConfigKey)

	cmd.PersistentFlags().IntVarP(
		&jobsFlag, jobsFlagName, "p",
		viper.GetInt(jobsConfigKey),
		"number of files analyzed in parallel",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(jobsFlagName), jobsConfigKey)

	cmd.PersistentFlags().StringVarP(
		&reportsOutputDirFlag, outputFlagName, "o",
		viper.GetString(outputFlagName),
		"directory for scan reports (empty: reports disabled)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newUI picks the interactive TUI when stdout is a terminal and the plain
// writer otherwise (piped output, CI logs).
func newUI(cmd *cobra.Command) controller.UI {
	if controller.IsTTY(os.Stdout) {
		return controller.NewTUI(os.Stdout, os.Stderr)
	}

	return controller.NewSimpleUI(cmd, false)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// scanArgsFromFlags assembles the common scan arguments from the resolved
// flag/config values and the positional root directory.
func scanArgsFromFlags(args []string) domain.ScanArgs {
	root := m.Path(defaultTestDir)
	if len(args) > 0 {
		root = m.Path(args[0])
	}

	packages := make([]m.Path, 0, len(viper.GetStringSlice(packagesConfigKey)))
	for _, pkgDir := range viper.GetStringSlice(packagesConfigKey) {
		packages = append(packages, m.Path(pkgDir))
	}

	return domain.ScanArgs{
		Root:     root,
		Packages: packages,
		Excluded: m.ParseMarkerSet(viper.GetString(excludeMarkersConfigKey)),
		Jobs:     viper.GetInt(jobsConfigKey),
	}
}
