package layout

import (
	"fmt"

	"github.com/aretw0/stagedash/pkg/domain"
)

// Partition splits area into count contiguous regions along direction.
//
// The margin is removed from all four sides first; a margin too large for the area
// yields zero-size regions rather than an error. Region k spans
// floor(L*(k+1)/count) - floor(L*k/count) cells, where L is the interior length,
// so any remainder lands on the last regions.
func Partition(area domain.Rect, direction domain.Direction, margin, count int) ([]domain.Rect, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRegionCount, count)
	}
	if margin < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrNegativeMargin, margin)
	}

	inner := domain.NewRect(area.X, area.Y, area.Width, area.Height).Inner(margin)

	length := inner.Width
	if direction == domain.Column {
		length = inner.Height
	}

	regions := make([]domain.Rect, count)
	for k := range count {
		start := spanOffset(length, k, count)
		size := spanOffset(length, k+1, count) - start

		switch direction {
		case domain.Column:
			regions[k] = domain.Rect{X: inner.X, Y: inner.Y + start, Width: inner.Width, Height: size}
		default:
			regions[k] = domain.Rect{X: inner.X + start, Y: inner.Y, Width: size, Height: inner.Height}
		}
	}

	return regions, nil
}

// MustPartition is like Partition but panics on a contract violation.
// Use it only where count and margin are compile-time constants.
func MustPartition(area domain.Rect, direction domain.Direction, margin, count int) []domain.Rect {
	regions, err := Partition(area, direction, margin, count)
	if err != nil {
		panic(err)
	}
	return regions
}

func spanOffset(length, k, count int) int {
	return length * k / count
}
