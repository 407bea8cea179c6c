package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/stagedash/internal/presentation/tui"
	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_FallbackSize(t *testing.T) {
	var buf bytes.Buffer
	term := tui.NewTerminal(&buf)

	assert.False(t, term.IsTerminal())
	w, h := term.Size()
	assert.Equal(t, tui.FallbackWidth, w)
	assert.Equal(t, tui.FallbackHeight, h)
	assert.Equal(t, domain.NewRect(0, 0, 80, 24), term.Canvas(false).Bounds())
}

func TestTerminal_ClearAndFlushOffTTY(t *testing.T) {
	var buf bytes.Buffer
	term := tui.NewTerminal(&buf)

	term.Clear()
	assert.Empty(t, buf.String(), "no escape codes off a terminal")

	c := term.Canvas(true)
	require.NoError(t, term.Flush(c))
	assert.Equal(t, 24, strings.Count(buf.String(), "\n"))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestSummaryMarkdown(t *testing.T) {
	p := &domain.Pipeline{Name: "web_app", Stages: []domain.Stage{
		domain.NewStage("Build", "Succeeded"),
		domain.NewStage("Deploy", ""),
	}}

	md := tui.SummaryMarkdown(p)
	assert.Contains(t, md, `# web\_app`)
	assert.Contains(t, md, "| 1 | Build | Succeeded |")
	assert.Contains(t, md, "| 2 | Deploy | _never executed_ |")

	empty := tui.SummaryMarkdown(&domain.Pipeline{Name: "empty"})
	assert.Contains(t, empty, "_No stages._")
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := tui.NewRenderer(false, 80)
	require.NoError(t, err)

	out, err := render(tui.SummaryMarkdown(&domain.Pipeline{Name: "api", Stages: []domain.Stage{
		domain.NewStage("Build", "Failed"),
	}}))
	require.NoError(t, err)
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "Failed")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
	assert.NotContains(t, buf.String(), "\x1b[")
}
