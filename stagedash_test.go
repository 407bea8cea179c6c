package stagedash_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/stagedash"
	"github.com/aretw0/stagedash/internal/logging"
	"github.com/aretw0/stagedash/internal/presentation/tui"
	"github.com/aretw0/stagedash/pkg/adapters/memory"
	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSurface struct {
	bounds domain.Rect
	drawn  []domain.Panel
}

func (s *recordingSurface) Bounds() domain.Rect { return s.bounds }

func (s *recordingSurface) Draw(p domain.Panel) error {
	s.drawn = append(s.drawn, p)
	return nil
}

type stageRecorder struct {
	pipeline string
	stages   []domain.Stage
}

func (r *stageRecorder) ObserveStages(pipeline string, stages []domain.Stage) {
	r.pipeline, r.stages = pipeline, stages
}

func newSource(t *testing.T, pipelines ...domain.Pipeline) *memory.Source {
	t.Helper()
	source, err := memory.NewSource(pipelines...)
	require.NoError(t, err)
	return source
}

func deliveryPipeline() domain.Pipeline {
	return domain.Pipeline{Name: "delivery", Stages: []domain.Stage{
		domain.NewStage("Build", "Succeeded"),
		domain.NewStage("Test", "Failed"),
		domain.NewStage("Deploy", ""),
	}}
}

func TestDashboard_Render(t *testing.T) {
	source := newSource(t, domain.Pipeline{Name: "other"}, deliveryPipeline())
	surface := &recordingSurface{bounds: domain.NewRect(0, 0, 120, 40)}

	err := stagedash.New(source, stagedash.WithMatch("deliv")).Render(context.Background(), surface)
	require.NoError(t, err)

	require.Len(t, surface.drawn, 8)
	stages := surface.drawn[2:5]
	assert.Equal(t, "Build", stages[0].Title)
	assert.Equal(t, domain.ColorGreen, stages[0].Color)
	assert.Equal(t, domain.NewRect(2, 2, 38, 17), stages[0].Area)
	assert.Equal(t, "Test", stages[1].Title)
	assert.Equal(t, domain.ColorRed, stages[1].Color)
	assert.Equal(t, domain.NewRect(40, 2, 39, 17), stages[1].Area)
	assert.Equal(t, "Deploy", stages[2].Title)
	assert.Equal(t, domain.ColorRed, stages[2].Color)
	assert.Equal(t, domain.NewRect(79, 2, 39, 17), stages[2].Area)
}

func TestDashboard_RenderOnCanvas(t *testing.T) {
	source := newSource(t, deliveryPipeline())
	canvas := tui.NewCanvas(60, 20)

	require.NoError(t, stagedash.New(source).Render(context.Background(), canvas))
	assert.Contains(t, canvas.String(), "Stages")
	assert.Contains(t, canvas.String(), "Commits")
	assert.Contains(t, canvas.String(), "Deploy")
}

func TestDashboard_FetchFiltersAndLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewWithWriter(&logs, slog.LevelDebug)
	rec := &stageRecorder{}

	source := newSource(t, domain.Pipeline{Name: "mixed", Stages: []domain.Stage{
		domain.NewStage("Build", "Succeeded"),
		{Name: ""},
		domain.NewStage("Deploy", ""),
	}})

	dash := stagedash.New(source, stagedash.WithLogger(logger), stagedash.WithRecorder(rec))
	p, err := dash.Fetch(context.Background(), "mixed")
	require.NoError(t, err)

	require.Len(t, p.Stages, 2)
	assert.Equal(t, "Build", p.Stages[0].Name)
	assert.Equal(t, "Deploy", p.Stages[1].Name)
	assert.Equal(t, "mixed", rec.pipeline)
	assert.Len(t, rec.stages, 2)

	out := logs.String()
	assert.Contains(t, out, `msg="stage status"`)
	assert.Contains(t, out, "stage=Build status=Succeeded")
	assert.Contains(t, out, `msg="could not inspect stage"`)
	assert.Contains(t, out, `err="stage has no name"`)
	assert.Contains(t, out, "level=WARN")
}

func TestDashboard_RenderErrorsDrawNothing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		source  *memory.Source
		match   string
		wantErr error
	}{
		{"no pipelines", newSource(t), "", domain.ErrNoPipelines},
		{"unknown pipeline", newSource(t, deliveryPipeline()), "payments", domain.ErrPipelineNotFound},
		{"no stages", newSource(t, domain.Pipeline{Name: "empty"}), "", domain.ErrNoStages},
		{"only nameless stages", newSource(t, domain.Pipeline{Name: "broken", Stages: []domain.Stage{{Name: ""}}}), "", domain.ErrNoStages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &recordingSurface{bounds: domain.NewRect(0, 0, 80, 24)}
			err := stagedash.New(tt.source, stagedash.WithMatch(tt.match)).Render(ctx, surface)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, surface.drawn)
		})
	}
}

type brokenSource struct{}

func (brokenSource) ListPipelines(context.Context) ([]string, error) {
	return nil, errors.New("connection refused")
}

func (brokenSource) PipelineState(context.Context, string) (*domain.Pipeline, error) {
	return nil, errors.New("connection refused")
}

func TestDashboard_SourceFailure(t *testing.T) {
	_, err := stagedash.New(brokenSource{}).Current(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list pipelines")
}
