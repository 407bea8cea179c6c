package render

import (
	"fmt"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/layout"
	"github.com/aretw0/stagedash/pkg/ports"
)

const (
	sectionMargin     = 1
	stageMargin       = 1
	placeholderMargin = 0
)

// Frame holds every panel of one screen, grouped by role.
type Frame struct {
	Sections     []domain.Section
	Headers      []domain.Panel
	Stages       []domain.Panel
	Placeholders []domain.Panel
}

// Panels returns the draw commands in order: headers, stages, placeholders.
func (f Frame) Panels() []domain.Panel {
	panels := make([]domain.Panel, 0, len(f.Headers)+len(f.Stages)+len(f.Placeholders))
	panels = append(panels, f.Headers...)
	panels = append(panels, f.Stages...)
	return append(panels, f.Placeholders...)
}

// BuildFrame lays out the sections and one panel per stage.
//
// Panels are ordered: section headers, stage panels left to right, then the
// Commits placeholders. Every stage must have a name; the caller filters nameless
// stages out beforehand.
func BuildFrame(screen domain.Rect, stages []domain.Stage) (Frame, error) {
	if len(stages) == 0 {
		return Frame{}, domain.ErrNoStages
	}
	for i, stage := range stages {
		if !stage.Displayable() {
			return Frame{}, fmt.Errorf("stage %d: %w", i, domain.ErrMissingStageName)
		}
	}

	titles := []string{SectionStages, SectionCommits}
	areas := layout.MustPartition(screen, domain.Column, sectionMargin, len(titles))

	frame := Frame{}
	for i, title := range titles {
		frame.Sections = append(frame.Sections, domain.Section{Title: title, Area: areas[i]})
		frame.Headers = append(frame.Headers, SectionPanel(title).At(areas[i]))
	}

	stageAreas, err := layout.Partition(areas[0], domain.Row, stageMargin, len(stages))
	if err != nil {
		return Frame{}, fmt.Errorf("failed to partition stages: %w", err)
	}
	for i, stage := range stages {
		frame.Stages = append(frame.Stages, StagePanel(stage.Name, stage.Latest).At(stageAreas[i]))
	}

	cells, err := layout.Partition(areas[1], domain.Row, placeholderMargin, len(stages))
	if err != nil {
		return Frame{}, fmt.Errorf("failed to partition commits: %w", err)
	}
	for _, cell := range cells {
		frame.Placeholders = append(frame.Placeholders, PlaceholderPanel().At(cell))
	}

	return frame, nil
}

// Draw issues one draw command per panel, in frame order.
func Draw(surface ports.Surface, frame Frame) error {
	for _, panel := range frame.Panels() {
		if err := surface.Draw(panel); err != nil {
			return fmt.Errorf("failed to draw panel %q: %w", panel.Title, err)
		}
	}
	return nil
}

// Paint builds the frame for the surface's bounds and draws it.
// Nothing is drawn when the frame cannot be built.
func Paint(surface ports.Surface, stages []domain.Stage) (Frame, error) {
	frame, err := BuildFrame(surface.Bounds(), stages)
	if err != nil {
		return Frame{}, err
	}
	return frame, Draw(surface, frame)
}
