package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/stagedash/pkg/adapters/file"
	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []domain.Pipeline {
	return []domain.Pipeline{
		{Name: "web-frontend", Stages: []domain.Stage{
			domain.NewStage("Source", "Succeeded"),
			domain.NewStage("Build", "InProgress"),
			domain.NewStage("Deploy", ""),
		}},
		{Name: "billing-api", Stages: []domain.Stage{
			domain.NewStage("Test", "Failed"),
			domain.NewStage("Approve", "Paused"),
		}},
	}
}

func TestSource_Contract(t *testing.T) {
	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pipelines"+ext)
			require.NoError(t, file.Write(path, fixture()))

			ports.RunPipelineSourceContract(t, file.New(path), fixture())
		})
	}
}

func TestSource_HandWrittenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipelines.yml")
	content := `
pipelines:
  - name: infra
    stages:
      - name: Plan
        status: Succeeded
      - name: Apply
      - status: Failed
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := file.New(path).PipelineState(context.Background(), "infra")
	require.NoError(t, err)
	require.Len(t, p.Stages, 3)
	assert.Equal(t, "Plan", p.Stages[0].Name)
	assert.Equal(t, domain.StatusSucceeded, p.Stages[0].Latest.Code)
	assert.Nil(t, p.Stages[1].Latest)
	assert.False(t, p.Stages[2].Displayable(), "nameless stages are passed through for the caller to report")
}

func TestSource_MissingFile(t *testing.T) {
	_, err := file.New(filepath.Join(t.TempDir(), "absent.yaml")).ListPipelines(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := file.New(path).ListPipelines(context.Background())
	assert.Error(t, err)
}

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, file.DefaultPath, file.New("").Path)
}
