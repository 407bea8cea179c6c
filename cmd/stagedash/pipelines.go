package main

import (
	"context"

	"github.com/aretw0/stagedash/internal/cli"
	"github.com/spf13/cobra"
)

var pipelinesCmd = &cobra.Command{
	Use:     "pipelines",
	Aliases: []string{"ls"},
	Short:   "List the pipelines the source reports",
	Long:    `Prints one pipeline per line. The pipeline the dashboard would show is marked with '*'.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(cmd, func(ctx context.Context, env *cli.Environment) error {
			return cli.ListPipelines(ctx, env, cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(pipelinesCmd)
}
