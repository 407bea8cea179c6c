package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/stagedash/pkg/domain"
)

// Source implements ports.PipelineSource using an in-memory list.
// It is safe for concurrent use.
type Source struct {
	mu        sync.RWMutex
	pipelines []domain.Pipeline
}

// NewSource creates a new Source holding the given pipelines, in listing order.
func NewSource(pipelines ...domain.Pipeline) (*Source, error) {
	s := &Source{}
	for _, p := range pipelines {
		if err := s.Put(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Put adds a pipeline, or replaces the one with the same name in place.
func (s *Source) Put(p domain.Pipeline) error {
	if p.Name == "" {
		return fmt.Errorf("pipeline missing name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.Stages = cloneStages(p.Stages)
	if i := s.index(p.Name); i >= 0 {
		s.pipelines[i] = p
		return nil
	}
	s.pipelines = append(s.pipelines, p)
	return nil
}

// ListPipelines returns all pipeline names in insertion order.
func (s *Source) ListPipelines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.pipelines))
	for _, p := range s.pipelines {
		names = append(names, p.Name)
	}
	return names, nil
}

// PipelineState returns a copy of the named pipeline.
func (s *Source) PipelineState(ctx context.Context, name string) (*domain.Pipeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPipelineNotFound, name)
	}
	p := s.pipelines[i]
	p.Stages = cloneStages(p.Stages)
	return &p, nil
}

func (s *Source) index(name string) int {
	return slices.IndexFunc(s.pipelines, func(p domain.Pipeline) bool { return p.Name == name })
}

func cloneStages(stages []domain.Stage) []domain.Stage {
	out := make([]domain.Stage, len(stages))
	for i, st := range stages {
		out[i] = st
		if st.Latest != nil {
			latest := *st.Latest
			out[i].Latest = &latest
		}
	}
	return out
}
