package render

import "github.com/aretw0/stagedash/pkg/domain"

// Section titles, top to bottom.
const (
	SectionStages  = "Stages"
	SectionCommits = "Commits"
)

// StatusColor maps a stage's latest execution onto its border colour.
// A stage without any execution is as alarming as a failed one.
func StatusColor(status *domain.ExecutionStatus) domain.Color {
	if status == nil {
		return domain.ColorRed
	}
	switch status.Code {
	case domain.StatusInProgress:
		return domain.ColorLightBlue
	case domain.StatusFailed:
		return domain.ColorRed
	case domain.StatusSucceeded:
		return domain.ColorGreen
	default:
		return domain.ColorLightYellow
	}
}

// StagePanel builds the panel for a stage. The caller places it with Panel.At.
func StagePanel(title string, status *domain.ExecutionStatus) domain.Panel {
	return domain.Panel{
		Title:  title,
		Bold:   true,
		Border: domain.BorderThick,
		Color:  StatusColor(status),
	}
}

// SectionPanel builds a section header panel.
func SectionPanel(title string) domain.Panel {
	return domain.Panel{
		Title:  title,
		Bold:   true,
		Border: domain.BorderThick,
		Color:  domain.ColorAccent,
	}
}

// PlaceholderPanel builds an inert, borderless cell.
func PlaceholderPanel() domain.Panel {
	return domain.Panel{Border: domain.BorderNone}
}
