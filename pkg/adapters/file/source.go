package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the snapshot file read when no path is configured.
const DefaultPath = "pipelines.yaml"

// Source implements ports.PipelineSource over a YAML or JSON snapshot file.
// The file is re-read on every call, so edits are picked up without a restart.
type Source struct {
	Path string
}

// snapshot is the on-disk document shape.
type snapshot struct {
	Pipelines []pipelineDoc `mapstructure:"pipelines"`
}

type pipelineDoc struct {
	Name   string     `mapstructure:"name"`
	Stages []stageDoc `mapstructure:"stages"`
}

type stageDoc struct {
	Name   string `mapstructure:"name"`
	Status string `mapstructure:"status"`
}

// New creates a new Source for the given path.
// If path is empty, it defaults to DefaultPath.
func New(path string) *Source {
	if path == "" {
		path = DefaultPath
	}
	return &Source{Path: path}
}

// ListPipelines returns the pipeline names in document order.
func (s *Source) ListPipelines(ctx context.Context) ([]string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.Pipelines))
	for _, p := range doc.Pipelines {
		names = append(names, p.Name)
	}
	return names, nil
}

// PipelineState returns the first pipeline in the document with the given name.
func (s *Source) PipelineState(ctx context.Context, name string) (*domain.Pipeline, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range doc.Pipelines {
		if p.Name != name {
			continue
		}
		pipeline := &domain.Pipeline{Name: p.Name, Stages: make([]domain.Stage, 0, len(p.Stages))}
		for _, st := range p.Stages {
			pipeline.Stages = append(pipeline.Stages, domain.NewStage(st.Name, st.Status))
		}
		return pipeline, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrPipelineNotFound, name)
}

func (s *Source) load(ctx context.Context) (*snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline snapshot: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse pipeline snapshot %s: %w", s.Path, err)
	}

	var doc snapshot
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode pipeline snapshot %s: %w", s.Path, err)
	}

	return &doc, nil
}

// Write stores pipelines as a snapshot document at path, in the format its extension selects.
// The file is written to a temporary sibling first and renamed into place.
func Write(path string, pipelines []domain.Pipeline) error {
	doc := map[string]any{"pipelines": toDocs(pipelines)}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure snapshot directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "tmp-snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename cannot replace an existing file on Windows.
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing snapshot for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to snapshot: %w", err)
	}
	return nil
}

func toDocs(pipelines []domain.Pipeline) []map[string]any {
	docs := make([]map[string]any, 0, len(pipelines))
	for _, p := range pipelines {
		stages := make([]map[string]any, 0, len(p.Stages))
		for _, st := range p.Stages {
			stage := map[string]any{"name": st.Name}
			if st.Latest != nil {
				stage["status"] = st.Latest.Raw
			}
			stages = append(stages, stage)
		}
		docs = append(docs, map[string]any{"name": p.Name, "stages": stages})
	}
	return docs
}
