package main

import (
	"fmt"
	"strings"

	"github.com/drossy/stars"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stars",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stars version %s\n", strings.TrimSpace(stars.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
