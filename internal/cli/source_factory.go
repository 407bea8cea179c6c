package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/stagedash"
	"github.com/aretw0/stagedash/internal/config"
	"github.com/aretw0/stagedash/pkg/adapters/file"
	stagehttp "github.com/aretw0/stagedash/pkg/adapters/http"
	"github.com/aretw0/stagedash/pkg/adapters/redis"
	"github.com/aretw0/stagedash/pkg/adapters/sqlite"
	"github.com/aretw0/stagedash/pkg/observability"
	"github.com/aretw0/stagedash/pkg/ports"
)

// Environment is everything a command needs to talk to the configured source.
type Environment struct {
	Config   config.Config
	Logger   *slog.Logger
	Source   ports.PipelineSource
	Recorder *observability.Recorder
	closers  []func() error
}

// BuildSource creates the adapter selected by source.kind.
// The returned close function releases the adapter's resources.
func BuildSource(cfg config.Config, logger *slog.Logger) (ports.PipelineSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source.Kind {
	case config.SourceFile:
		source := file.New(cfg.Source.Path)
		logger.Debug("using snapshot file source", "path", source.Path)
		return source, noop, nil

	case config.SourceHTTP:
		opts := []stagehttp.Option{}
		if cfg.Source.Timeout > 0 {
			opts = append(opts, stagehttp.WithTimeout(cfg.Source.Timeout))
		}
		if cfg.Source.Token != "" {
			opts = append(opts, stagehttp.WithToken(cfg.Source.Token))
		}
		client, err := stagehttp.NewClient(cfg.Source.URL, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create http source: %w", err)
		}
		logger.Debug("using http source", "url", cfg.Source.URL)
		return client, noop, nil

	case config.SourceSQLite:
		source, err := sqlite.Open(cfg.Source.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open run history: %w", err)
		}
		logger.Debug("using run history source", "path", cfg.Source.Path)
		return source, source.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}

// Open builds the configured source, wrapped with the Redis cache when enabled and
// with metrics always.
func Open(cfg config.Config, logger *slog.Logger) (*Environment, error) {
	source, closeSource, err := BuildSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		Config:   cfg,
		Logger:   logger,
		Recorder: observability.NewRecorder(),
		closers:  []func() error{closeSource},
	}

	if cfg.Cache.Enabled() {
		cache := redis.New(source, cfg.Cache.RedisAddr, cfg.Cache.Password, cfg.Cache.DB,
			redis.WithTTL(cfg.Cache.TTL),
			redis.WithLogger(logger),
		)
		env.closers = append(env.closers, cache.Close)
		source = cache
		logger.Debug("caching source in redis", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
	}

	env.Source = observability.NewMetered(source, cfg.Source.Kind, env.Recorder)
	return env, nil
}

// Dashboard creates a dashboard over the environment's source.
func (e *Environment) Dashboard() *stagedash.Dashboard {
	return stagedash.New(e.Source,
		stagedash.WithLogger(e.Logger),
		stagedash.WithMatch(e.Config.Pipeline.Match),
		stagedash.WithRecorder(e.Recorder),
	)
}

// FlushMetrics writes the metrics textfile when metrics.file is set.
func (e *Environment) FlushMetrics() error {
	if e.Config.Metrics.File == "" {
		return nil
	}
	if err := e.Recorder.WriteTextfile(e.Config.Metrics.File); err != nil {
		return err
	}
	e.Logger.Debug("wrote metrics textfile", "path", e.Config.Metrics.File)
	return nil
}

// Close releases every resource in reverse order of acquisition.
func (e *Environment) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
