package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/stagedash/internal/cli"
	"github.com/aretw0/stagedash/internal/config"
	"github.com/spf13/cobra"
)

var loader = config.NewLoader()

var rootCmd = &cobra.Command{
	Use:   "stagedash",
	Short: "stagedash paints the stages of a delivery pipeline in the terminal",
	Long: `stagedash fetches a pipeline's stages and the status of their latest execution,
paints a single dashboard frame (one panel per stage, coloured by status) and exits.

Configuration is read from stagedash.yaml (current directory or ~/.config/stagedash),
from STAGEDASH_* environment variables (a .env file is loaded first) and from flags.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagBindings maps persistent flags onto config keys.
var flagBindings = map[string]string{
	"pipeline":     "pipeline.match",
	"source":       "source.kind",
	"source-url":   "source.url",
	"source-path":  "source.path",
	"token":        "source.token",
	"timeout":      "source.timeout",
	"redis-addr":   "cache.redis_addr",
	"cache-ttl":    "cache.ttl",
	"metrics-file": "metrics.file",
	"log-level":    "log.level",
	"ascii":        "ui.ascii",
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: ./stagedash.yaml or ~/.config/stagedash/stagedash.yaml)")
	flags.StringP("pipeline", "p", "", "Name or name fragment of the pipeline to show (default: first pipeline)")
	flags.String("source", config.SourceFile, "Pipeline source: file, http or sqlite")
	flags.String("source-url", "", "Base URL of the pipeline state API (http source)")
	flags.String("source-path", "", "Snapshot file (file source) or run-history database (sqlite source)")
	flags.String("token", "", "Bearer token for the pipeline state API")
	flags.Duration("timeout", 0, "Request timeout for the http source (default 10s)")
	flags.String("redis-addr", "", "Cache pipeline state in Redis at this address")
	flags.Duration("cache-ttl", 0, "Lifetime of cached pipeline state (default 30s)")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("ascii", false, "Draw borders with ASCII characters")

	for name, key := range flagBindings {
		if err := loader.BindFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.RunE = showCmd.RunE
}

// withEnvironment resolves the configuration, opens the pipeline source and runs fn.
func withEnvironment(cmd *cobra.Command, fn func(ctx context.Context, env *cli.Environment) error) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.SetConfigFile(path)
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return err
	}
	if used := loader.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}

	env, err := cli.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := env.Close(); err != nil {
			logger.Warn("failed to release source", "error", err)
		}
	}()

	return fn(cmd.Context(), env)
}
