package domain

// Color is a named terminal colour. The terminal driver decides how it is emitted.
type Color string

const (
	ColorDefault     Color = ""
	ColorRed         Color = "red"
	ColorGreen       Color = "green"
	ColorLightBlue   Color = "light-blue"
	ColorLightYellow Color = "light-yellow"
	// ColorAccent is the fixed section header colour, rgb(255,178,102).
	ColorAccent Color = "accent"
)

// BorderStyle describes how a panel's frame is drawn.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderThick
)

// Panel is a single draw command for one frame.
type Panel struct {
	Area   Rect
	Title  string
	Bold   bool
	Border BorderStyle
	Color  Color
}

// At returns a copy of the panel placed on area.
func (p Panel) At(area Rect) Panel {
	p.Area = area
	return p
}

// Section is a named top-level region of the frame.
type Section struct {
	Title string
	Area  Rect
}
