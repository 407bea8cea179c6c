package domain

import "fmt"

// Direction is the axis along which an area is split.
type Direction int

const (
	// Row lays regions out left to right, splitting the width.
	Row Direction = iota
	// Column lays regions out top to bottom, splitting the height.
	Column
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Rect is a rectangle on the drawing surface, in terminal cells.
// The origin is the top-left corner of the surface.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a Rect, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty reports whether the rectangle covers no cell.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inner shrinks the rectangle by margin cells on every side.
// When twice the margin exceeds a dimension, that dimension becomes zero.
func (r Rect) Inner(margin int) Rect {
	if margin <= 0 {
		return r
	}
	width := max(r.Width-2*margin, 0)
	height := max(r.Height-2*margin, 0)
	return Rect{X: r.X + margin, Y: r.Y + margin, Width: width, Height: height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
