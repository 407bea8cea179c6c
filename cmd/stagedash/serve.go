package main

import (
	"context"
	"fmt"
	"net"

	"github.com/aretw0/stagedash/internal/cli"
	"github.com/aretw0/stagedash/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline state API",
	Long: `Exposes the configured source as the JSON API the http source consumes:
GET /pipelines, GET /pipelines/{name}/state, GET /healthz and GET /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(cmd, func(ctx context.Context, env *cli.Environment) error {
			addr := env.Config.Serve.Addr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("serve-token") {
				env.Config.Serve.Token, _ = cmd.Flags().GetString("serve-token")
			}

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}

			tui.PrintBanner(cmd.ErrOrStderr())

			sigCtx := cli.NewSignalContext(ctx)
			defer sigCtx.Cancel()

			err = cli.Serve(sigCtx, env, listener)
			if sig := sigCtx.Signal(); sig != nil {
				env.Logger.Info("received signal", "signal", sig.String())
			}
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("serve-token", "", "Require this bearer token on the pipeline routes")
}
