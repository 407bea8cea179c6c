package ports

import (
	"context"

	"github.com/aretw0/stagedash/pkg/domain"
)

// PipelineSource is the pipeline-management service the dashboard reads from.
type PipelineSource interface {
	// ListPipelines returns the names of all pipelines, in the order the source lists them.
	ListPipelines(ctx context.Context) ([]string, error)

	// PipelineState returns the pipeline's stages and their latest executions.
	// Returns domain.ErrPipelineNotFound if the pipeline does not exist.
	PipelineState(ctx context.Context, name string) (*domain.Pipeline, error)
}
