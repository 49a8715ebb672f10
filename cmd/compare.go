package cmd

import (
	"fmt"

	"extension-monitor/core/version"

	"github.com/spf13/cobra"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare CURRENT TARGET",
	Short: "Compare two version strings",
	Long:  `Prints how CURRENT orders against TARGET and whether TARGET is a sequential update of CURRENT.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		current, target := args[0], args[1]

		op := "="
		switch c := version.Compare(current, target); {
		case c < 0:
			op = "<"
		case c > 0:
			op = ">"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s %s\n", current, op, target)
		fmt.Fprintf(out, "Sequential update: %t\n", version.IsSequentialUpdate(current, target))
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)
}
