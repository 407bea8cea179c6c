package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/aretw0/stagedash/pkg/adapters/file"
	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "stagedash version dev\n", run(t, "version"))
}

func TestPipelinesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipelines.json")
	require.NoError(t, file.Write(path, []domain.Pipeline{
		{Name: "alpha", Stages: []domain.Stage{domain.NewStage("Build", "Succeeded")}},
		{Name: "beta", Stages: []domain.Stage{domain.NewStage("Build", "Failed")}},
	}))

	out := run(t, "pipelines", "--source-path", path, "--pipeline", "bet", "--log-level", "error")
	assert.Equal(t, "  alpha\n* beta\n", out)
}
