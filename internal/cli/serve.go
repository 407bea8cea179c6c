package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	stagehttp "github.com/aretw0/stagedash/pkg/adapters/http"
)

// ShutdownTimeout bounds how long in-flight requests may take once serving stops.
const ShutdownTimeout = 5 * time.Second

// Handler builds the API handler for the environment's source.
func Handler(env *Environment) http.Handler {
	opts := []stagehttp.ServerOption{
		stagehttp.WithLogger(env.Logger),
		stagehttp.WithMetrics(env.Recorder.Handler()),
	}
	if env.Config.Serve.Token != "" {
		opts = append(opts, stagehttp.WithRequiredToken(env.Config.Serve.Token))
	}
	return stagehttp.NewHandler(env.Source, opts...)
}

// Serve exposes the configured source over HTTP on listener until ctx is done,
// then shuts down gracefully.
func Serve(ctx context.Context, env *Environment, listener net.Listener) error {
	srv := &http.Server{
		Handler:           Handler(env),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		env.Logger.Info("serving pipeline state", "addr", listener.Addr().String(), "source", env.Config.Source.Kind)
		serverErrors <- srv.Serve(listener)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		env.Logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			env.Logger.Error("graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
		}
		env.Logger.Info("server stopped gracefully")
		return nil
	}
}
