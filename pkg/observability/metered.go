package observability

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/ports"
)

// Metered wraps a ports.PipelineSource and records every call on a Recorder.
type Metered struct {
	source   ports.PipelineSource
	name     string
	recorder *Recorder
}

// NewMetered creates a metered source labelled name.
func NewMetered(source ports.PipelineSource, name string, recorder *Recorder) *Metered {
	return &Metered{source: source, name: name, recorder: recorder}
}

// ListPipelines forwards to the wrapped source.
func (m *Metered) ListPipelines(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := m.source.ListPipelines(ctx)
	m.observe(start, err)
	return names, err
}

// PipelineState forwards to the wrapped source.
func (m *Metered) PipelineState(ctx context.Context, name string) (*domain.Pipeline, error) {
	start := time.Now()
	p, err := m.source.PipelineState(ctx, name)
	m.observe(start, err)
	return p, err
}

func (m *Metered) observe(start time.Time, err error) {
	m.recorder.ObserveFetch(m.name, time.Since(start))
	// ErrPipelineNotFound does not count as a fetch error.
	if err != nil && !errors.Is(err, domain.ErrPipelineNotFound) {
		m.recorder.FetchFailed(m.name)
	}
}
