package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/stagedash"
	"github.com/aretw0/stagedash/internal/presentation/graph"
	"github.com/aretw0/stagedash/internal/presentation/tui"
)

// ListPipelines prints every pipeline the source reports, one per line.
// The pipeline the dashboard would show is marked with an asterisk.
func ListPipelines(ctx context.Context, env *Environment, out io.Writer) error {
	names, err := env.Source.ListPipelines(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pipelines: %w", err)
	}
	if len(names) == 0 {
		env.Logger.Warn("source reports no pipelines")
		return nil
	}

	selected, err := stagedash.SelectPipeline(names, env.Config.Pipeline.Match)
	if err != nil {
		env.Logger.Warn("no pipeline matches", "match", env.Config.Pipeline.Match, "error", err)
	}

	for _, name := range names {
		marker := " "
		if name == selected {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %s\n", marker, name); err != nil {
			return err
		}
	}
	return nil
}

// Summary prints the selected pipeline as a markdown table rendered by glamour.
func Summary(ctx context.Context, env *Environment, out io.Writer) error {
	p, err := env.Dashboard().Current(ctx)
	if err != nil {
		return err
	}

	term := tui.NewTerminal(out)
	width, _ := term.Size()
	render, err := tui.NewRenderer(term.IsTerminal(), width)
	if err != nil {
		return err
	}

	text, err := render(tui.SummaryMarkdown(p))
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	_, err = io.WriteString(out, text)
	return err
}

// Graph prints the selected pipeline as a Mermaid flowchart.
func Graph(ctx context.Context, env *Environment, out io.Writer) error {
	p, err := env.Dashboard().Current(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, graph.GenerateMermaid(p))
	return err
}
