package ports

import (
	"context"
	"testing"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPipelineSourceContract runs a suite of tests to verify that a PipelineSource
// implementation adheres to the defined interface contract.
//
// The source must already hold exactly the pipelines in fixture, listed in that order.
func RunPipelineSourceContract(t *testing.T, source PipelineSource, fixture []domain.Pipeline) {
	ctx := context.Background()
	require.NotEmpty(t, fixture, "contract fixture needs at least one pipeline")

	t.Run("List", func(t *testing.T) {
		names, err := source.ListPipelines(ctx)
		require.NoError(t, err, "ListPipelines should not return error")

		want := make([]string, 0, len(fixture))
		for _, p := range fixture {
			want = append(want, p.Name)
		}
		assert.Equal(t, want, names)
	})

	t.Run("State", func(t *testing.T) {
		for _, want := range fixture {
			got, err := source.PipelineState(ctx, want.Name)
			require.NoError(t, err, "PipelineState(%q) should not return error", want.Name)
			require.NotNil(t, got)
			assert.Equal(t, want.Name, got.Name)
			require.Len(t, got.Stages, len(want.Stages))
			for i, stage := range want.Stages {
				assert.Equal(t, stage.Name, got.Stages[i].Name)
				assert.Equal(t, stage.Latest, got.Stages[i].Latest, "stage %q", stage.Name)
			}
		}
	})

	t.Run("State Non-Existent", func(t *testing.T) {
		_, err := source.PipelineState(ctx, "non-existent-pipeline")
		assert.ErrorIs(t, err, domain.ErrPipelineNotFound)
	})
}
