package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutor/internal/controller"
	"gooze.dev/pkg/mutor/internal/domain"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the mutants of Go source files",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(v.GetString(listFormatKey))
			if err != nil {
				return err
			}

			cfg, err := mutateConfig(v)
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd, format, v.GetBool(listDiffKey))

			err = newWorkflow(ui).List(cmd.Context(), domain.ListArgs{
				Paths:    parsePaths(args),
				Exclude:  v.GetStringSlice(excludeConfigKey),
				Parallel: v.GetInt(runParallelConfigKey),
				Config:   cfg,
			})
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			return nil
		},
	}

	configureListFlags(cmd, v)

	return cmd
}

func init() {
	rootCmd.AddCommand(newListCmd(viper.GetViper()))
}

func configureListFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()

	flags.IntP(runParallelFlagName, "p", v.GetInt(runParallelConfigKey), "number of packages processed in parallel")
	bindFlagToConfig(v, flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.StringP(levelFlagName, "l", v.GetString(mutateLevelKey), "mutation level: basic, standard or complete")
	bindFlagToConfig(v, flags.Lookup(levelFlagName), mutateLevelKey)

	flags.StringToString(ignoreFlagName, v.GetStringMapString(mutateIgnoreKey), "ignore a mutation kind, as kind=reason (can be repeated)")
	bindFlagToConfig(v, flags.Lookup(ignoreFlagName), mutateIgnoreKey)

	flags.StringP(formatFlagName, "f", v.GetString(listFormatKey), "output format: table or yaml")
	bindFlagToConfig(v, flags.Lookup(formatFlagName), listFormatKey)

	flags.BoolP(diffFlagName, "d", v.GetBool(listDiffKey), "show every mutant with its diff")
	bindFlagToConfig(v, flags.Lookup(diffFlagName), listDiffKey)
}
