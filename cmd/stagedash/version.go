package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/stagedash"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stagedash",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stagedash version %s\n", strings.TrimSpace(stagedash.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
