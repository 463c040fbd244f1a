// Package cmd provides the root command and CLI setup for mutor.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutor/internal/adapter"
	"gooze.dev/pkg/mutor/internal/controller"
	"gooze.dev/pkg/mutor/internal/domain"
	m "gooze.dev/pkg/mutor/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var sourceFSAdapter adapter.SourceFSAdapter
var placer domain.Placer

// newWorkflow builds the workflow for one command run. The UI depends on
// per-run flags, so the workflow is assembled lazily.
var newWorkflow func(ui controller.UI) domain.Workflow

func init() {
	// Initialize shared dependencies.
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	placer = adapter.NewTextPlacer()
	newWorkflow = func(ui controller.UI) domain.Workflow {
		return domain.NewWorkflow(sourceFSAdapter, goFileAdapter, ui, placer)
	}
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories
  - ./main.go      a single file`

const rootLongDescription = `Mutor finds every place in your Go code where a small, deliberate
change (a mutant) can be made, and lists those mutants with their position,
description and diff. Package initialization code is flagged separately and
mutation kinds can be ignored per project or per function.

` + pathPatternsHelp

const listLongDescription = `List the mutants of the given paths (default: current module).

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
// It reads and binds the process-wide viper instance.
var rootCmd = newRootCmd(viper.GetViper())

func baseRootCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "mutor",
		Short: "Go mutant generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command whose flags are bound to v. Subcommands
// are added by the caller and should share v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := baseRootCmd(v)
	configureRootFlags(cmd, v)

	return cmd
}

func configureRootFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()

	flags.StringArrayP(excludeFlagName, "x", v.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(v, flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.BoolP(verboseFlagName, "v", v.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(v, flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, v.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(v, flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(v.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
