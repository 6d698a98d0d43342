package pid

import (
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "pid",
	Short:            "PID controller related commands",
	Long:             ``,
	TraverseChildren: true,
}
