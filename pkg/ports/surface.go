package ports

import "github.com/aretw0/stagedash/pkg/domain"

// Surface is a drawable screen.
type Surface interface {
	// Bounds returns the full drawable area.
	Bounds() domain.Rect

	// Draw renders a single panel. Panels drawn later may overlap earlier ones.
	Draw(panel domain.Panel) error
}
