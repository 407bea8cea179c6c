package main

import (
	"context"

	"github.com/aretw0/stagedash/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the pipeline as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) with one node per stage, coloured like the dashboard panels.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(cmd, func(ctx context.Context, env *cli.Environment) error {
			return cli.Graph(ctx, env, cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
