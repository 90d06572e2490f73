package cli

import (
	"github.com/spf13/cobra"
)

// Build metadata, overridden at build time via ldflags alongside
// version in root.go.
var (
	commit    = ""
	buildDate = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("docprep version %s\n", version)
		if commit != "" {
			cmd.Printf("commit: %s\n", commit)
		}
		if buildDate != "" {
			cmd.Printf("built: %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
