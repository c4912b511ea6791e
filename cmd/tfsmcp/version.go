package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the tfsmcp version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the tfsmcp binary.",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("tfsmcp %s\n", Version)
	},
}
