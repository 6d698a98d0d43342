package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tbeckfield/rotorpid/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rotorpid",
	Long:  `All software has versions. This is rotorpid's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("0.1.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
