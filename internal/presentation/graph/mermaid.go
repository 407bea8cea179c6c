package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/render"
)

// classDefs mirror the panel colour table so the chart reads like the dashboard.
// Text is forced to black for contrast on both light and dark themes.
var classDefs = []struct {
	color domain.Color
	def   string
}{
	{domain.ColorGreen, "fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px,color:#000"},
	{domain.ColorRed, "fill:#ffcdd2,stroke:#c62828,stroke-width:2px,color:#000"},
	{domain.ColorLightBlue, "fill:#bbdefb,stroke:#1565c0,stroke-width:2px,color:#000"},
	{domain.ColorLightYellow, "fill:#fff9c4,stroke:#f9a825,stroke-width:2px,color:#000"},
}

// GenerateMermaid produces a left-to-right Mermaid flowchart of a pipeline.
// Each stage is a node labelled with its name and status, chained in stage order,
// and classed by the colour its dashboard panel would have.
func GenerateMermaid(p *domain.Pipeline) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	if p.Name != "" {
		sb.WriteString(fmt.Sprintf("    %%%% %s\n", p.Name))
	}

	ids := make([]string, 0, len(p.Stages))
	for i, st := range p.Stages {
		if !st.Displayable() {
			continue
		}
		id := fmt.Sprintf("s%d_%s", i, sanitizeMermaidID(st.Name))
		ids = append(ids, id)

		status := st.StatusText()
		if st.Latest == nil {
			status = "never executed"
		}
		sb.WriteString(fmt.Sprintf("    %s[\"%s<br/>%s\"]\n", id, escapeLabel(st.Name), escapeLabel(status)))
	}

	for i := 1; i < len(ids); i++ {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", ids[i-1], ids[i]))
	}

	if len(ids) == 0 {
		return sb.String()
	}

	sb.WriteString("\n    %% Status Styles\n")
	for _, c := range classDefs {
		sb.WriteString(fmt.Sprintf("    classDef %s %s;\n", className(c.color), c.def))
	}

	n := 0
	for _, st := range p.Stages {
		if !st.Displayable() {
			continue
		}
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", ids[n], className(render.StatusColor(st.Latest))))
		n++
	}

	return sb.String()
}

func className(c domain.Color) string {
	return strings.ReplaceAll(string(c), "-", "")
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
