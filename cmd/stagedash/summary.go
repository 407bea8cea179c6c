package main

import (
	"context"

	"github.com/aretw0/stagedash/internal/cli"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the selected pipeline as a table",
	Long:  `Renders the stages of the selected pipeline and their status as a markdown table, for logs and non-interactive terminals.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(cmd, func(ctx context.Context, env *cli.Environment) error {
			return cli.Summary(ctx, env, cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
