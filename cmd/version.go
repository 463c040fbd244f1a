package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// describeBuild renders the version lines of a build. Binaries built outside
// module mode carry no version.
func describeBuild(info *debug.BuildInfo, ok bool) []string {
	if !ok || info == nil || info.Main.Version == "" {
		return []string{"mutor version unknown"}
	}

	return []string{
		"mutor " + info.Main.Version,
		"module " + info.Main.Path,
		"go " + info.GoVersion,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the mutor build version, its module path and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range describeBuild(readBuildInfo()) {
				cmd.Println(line)
			}
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
