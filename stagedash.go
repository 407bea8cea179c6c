package stagedash

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/ports"
	"github.com/aretw0/stagedash/pkg/render"
)

// Version is the release of the dashboard, stamped at build time.
var Version = "dev"

// Recorder receives the stages of every rendered pipeline.
type Recorder interface {
	ObserveStages(pipeline string, stages []domain.Stage)
}

// Dashboard is the high-level entry point: it selects a pipeline, fetches it and
// paints one frame.
type Dashboard struct {
	source   ports.PipelineSource
	match    string
	logger   *slog.Logger
	recorder Recorder
}

// Option defines a functional option for configuring the Dashboard.
type Option func(*Dashboard)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) {
		d.logger = logger
	}
}

// WithMatch sets the name, or fragment of a name, of the pipeline to show.
func WithMatch(match string) Option {
	return func(d *Dashboard) {
		d.match = match
	}
}

// WithRecorder reports every fetched pipeline to r.
func WithRecorder(r Recorder) Option {
	return func(d *Dashboard) {
		d.recorder = r
	}
}

// New creates a Dashboard reading from source.
func New(source ports.PipelineSource, opts ...Option) *Dashboard {
	d := &Dashboard{
		source: source,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Select lists the source's pipelines and picks the one to show.
func (d *Dashboard) Select(ctx context.Context) (string, error) {
	d.logger.Debug("listing pipelines")
	names, err := d.source.ListPipelines(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list pipelines: %w", err)
	}

	name, err := SelectPipeline(names, d.match)
	if err != nil {
		return "", err
	}
	d.logger.Info("selected pipeline", "pipeline", name, "match", d.match, "available", len(names))
	return name, nil
}

// Fetch reads the pipeline's state and logs each stage.
// Stages without a name cannot be shown; they are logged and dropped.
func (d *Dashboard) Fetch(ctx context.Context, name string) (*domain.Pipeline, error) {
	d.logger.Debug("fetching pipeline state", "pipeline", name)
	p, err := d.source.PipelineState(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pipeline %s: %w", name, err)
	}

	shown := &domain.Pipeline{Name: p.Name, Stages: make([]domain.Stage, 0, len(p.Stages))}
	for i, st := range p.Stages {
		switch {
		case !st.Displayable():
			d.logger.Error("could not inspect stage", "pipeline", p.Name, "index", i, "error", domain.ErrMissingStageName)
			continue
		case st.Latest == nil:
			d.logger.Warn("stage has no recorded execution", "pipeline", p.Name, "stage", st.Name)
		default:
			d.logger.Info("stage status", "pipeline", p.Name, "stage", st.Name, "status", st.StatusText())
		}
		shown.Stages = append(shown.Stages, st)
	}

	if d.recorder != nil {
		d.recorder.ObserveStages(shown.Name, shown.Stages)
	}
	return shown, nil
}

// Current selects and fetches the pipeline to show.
func (d *Dashboard) Current(ctx context.Context) (*domain.Pipeline, error) {
	name, err := d.Select(ctx)
	if err != nil {
		return nil, err
	}
	return d.Fetch(ctx, name)
}

// Render selects and fetches the pipeline, then paints one frame on surface.
// The surface is untouched when any step before drawing fails.
func (d *Dashboard) Render(ctx context.Context, surface ports.Surface) error {
	p, err := d.Current(ctx)
	if err != nil {
		return err
	}

	frame, err := render.BuildFrame(surface.Bounds(), p.Stages)
	if err != nil {
		return fmt.Errorf("failed to lay out pipeline %s: %w", p.Name, err)
	}
	if err := render.Draw(surface, frame); err != nil {
		return fmt.Errorf("failed to draw pipeline %s: %w", p.Name, err)
	}
	return nil
}
