package main

import (
	"context"

	"github.com/aretw0/stagedash/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Paint the pipeline dashboard",
	Long:  `Fetches the selected pipeline and paints one frame: a Stages section with a panel per stage and a Commits section.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(cmd, func(ctx context.Context, env *cli.Environment) error {
			return cli.Show(ctx, env, cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
