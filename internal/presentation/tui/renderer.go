package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Interactive terminals get the auto-detected light or dark style; anything else
// gets the plain "notty" style.
func NewRenderer(interactive bool, width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	if interactive {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// SummaryMarkdown describes a pipeline as a markdown table of its stages.
func SummaryMarkdown(p *domain.Pipeline) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(p.Name))
	if len(p.Stages) == 0 {
		sb.WriteString("_No stages._\n")
		return sb.String()
	}

	sb.WriteString("| # | Stage | Status |\n")
	sb.WriteString("|---|-------|--------|\n")
	for i, st := range p.Stages {
		status := st.StatusText()
		if st.Latest == nil {
			status = "_never executed_"
		}
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", i+1, escapeMarkdown(st.Name), escapeMarkdown(status))
	}
	return sb.String()
}

func escapeMarkdown(s string) string {
	return strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`).Replace(s)
}
