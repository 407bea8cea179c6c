package tui

import (
	"io"
	"strings"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type cellStyle struct {
	color domain.Color
	bold  bool
}

type cell struct {
	r     rune
	style cellStyle
}

// Canvas implements ports.Surface over an in-memory grid of cells.
// Nothing reaches the terminal until Render is called.
type Canvas struct {
	width   int
	height  int
	cells   []cell
	border  lipgloss.Border
	profile termenv.Profile
}

type CanvasOption func(*Canvas)

// WithASCII swaps the thick box-drawing glyphs for plain ASCII.
func WithASCII(ascii bool) CanvasOption {
	return func(c *Canvas) {
		if ascii {
			c.border = lipgloss.ASCIIBorder()
		}
	}
}

// WithProfile sets the colour profile used by Render.
func WithProfile(p termenv.Profile) CanvasOption {
	return func(c *Canvas) {
		c.profile = p
	}
}

// NewCanvas creates a blank canvas. Negative sizes are treated as zero.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:   width,
		height:  height,
		cells:   make([]cell, width*height),
		border:  lipgloss.ThickBorder(),
		profile: termenv.Ascii,
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bounds returns the whole canvas.
func (c *Canvas) Bounds() domain.Rect {
	return domain.NewRect(0, 0, c.width, c.height)
}

// Draw paints a panel. Cells outside the canvas are clipped.
func (c *Canvas) Draw(panel domain.Panel) error {
	if panel.Area.IsEmpty() || panel.Border == domain.BorderNone {
		return nil
	}

	a := panel.Area
	frame := cellStyle{color: panel.Color}
	left, right := a.X, a.Right()-1
	top, bottom := a.Y, a.Bottom()-1

	for x := left; x <= right; x++ {
		c.set(x, top, glyphAt(c.border, x, left, right, true), frame)
		if bottom != top {
			c.set(x, bottom, glyphAt(c.border, x, left, right, false), frame)
		}
	}
	for y := top + 1; y < bottom; y++ {
		c.set(left, y, firstRune(c.border.Left), frame)
		if right != left {
			c.set(right, y, firstRune(c.border.Right), frame)
		}
	}

	if panel.Title != "" && a.Width > 2 {
		title := []rune(panel.Title)
		if len(title) > a.Width-2 {
			title = title[:a.Width-2]
		}
		// Only the border takes the panel colour.
		style := cellStyle{bold: panel.Bold}
		for i, r := range title {
			c.set(left+1+i, top, r, style)
		}
	}

	return nil
}

func glyphAt(b lipgloss.Border, x, left, right int, top bool) rune {
	switch {
	case top && x == left:
		return firstRune(b.TopLeft)
	case top && x == right:
		return firstRune(b.TopRight)
	case top:
		return firstRune(b.Top)
	case x == left:
		return firstRune(b.BottomLeft)
	case x == right:
		return firstRune(b.BottomRight)
	default:
		return firstRune(b.Bottom)
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func (c *Canvas) set(x, y int, r rune, style cellStyle) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

// Rune returns the glyph at x, y, or a space outside the canvas.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ' '
	}
	return c.cells[y*c.width+x].r
}

// StyleAt returns the colour and weight of the cell at x, y.
func (c *Canvas) StyleAt(x, y int) (domain.Color, bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return domain.ColorDefault, false
	}
	s := c.cells[y*c.width+x].style
	return s.color, s.bold
}

// String returns the canvas as plain text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		for x := range c.width {
			sb.WriteRune(c.Rune(x, y))
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Render writes the canvas to w, styling each run of identical cells once.
func (c *Canvas) Render(w io.Writer) error {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(c.profile)

	var sb strings.Builder
	for y := range c.height {
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].style == row[start].style {
				end++
			}
			var run strings.Builder
			for _, cl := range row[start:end] {
				run.WriteRune(cl.r)
			}
			sb.WriteString(styleFor(renderer, row[start].style).Render(run.String()))
			start = end
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func styleFor(r *lipgloss.Renderer, s cellStyle) lipgloss.Style {
	style := r.NewStyle().Bold(s.bold)
	if s.color != domain.ColorDefault {
		style = style.Foreground(TerminalColor(s.color))
	}
	return style
}
