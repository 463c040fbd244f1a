package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInitCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default " + configFileName + " configuration file",
		Long: `Create a ` + configFileName + ` in the current working directory holding the
mutation level, ignored kinds, excludes and log settings currently in effect,
so it can be edited manually. An existing file is never overwritten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := v.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newInitCmd(viper.GetViper()))
}
