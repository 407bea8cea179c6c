package tui

import (
	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette colours. The ANSI indexes follow the 16-colour table, so light blue and
// light yellow are the bright variants (12 and 11).
const (
	ansiRed         = "1"
	ansiGreen       = "2"
	ansiLightYellow = "11"
	ansiLightBlue   = "12"
	hexAccent       = "#FFB266"
)

// TerminalColor maps a dashboard colour onto a lipgloss colour.
func TerminalColor(c domain.Color) lipgloss.TerminalColor {
	switch c {
	case domain.ColorRed:
		return lipgloss.Color(ansiRed)
	case domain.ColorGreen:
		return lipgloss.Color(ansiGreen)
	case domain.ColorLightBlue:
		return lipgloss.Color(ansiLightBlue)
	case domain.ColorLightYellow:
		return lipgloss.Color(ansiLightYellow)
	case domain.ColorAccent:
		return lipgloss.Color(hexAccent)
	default:
		return lipgloss.NoColor{}
	}
}
