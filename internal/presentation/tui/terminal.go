package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Fallback size used when the output is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Terminal is the real output device the dashboard paints on.
type Terminal struct {
	out    io.Writer
	output *termenv.Output
	fd     int
	tty    bool
}

// NewTerminal wraps w. Size detection only works when w is a terminal file.
func NewTerminal(w io.Writer) *Terminal {
	t := &Terminal{out: w, output: termenv.NewOutput(w), fd: -1}
	if f, ok := w.(*os.File); ok {
		t.fd = int(f.Fd())
		t.tty = term.IsTerminal(t.fd)
	}
	return t
}

// IsTerminal reports whether the output is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	return t.tty
}

// Size returns the terminal size in cells, or 80x24 when it cannot be read.
func (t *Terminal) Size() (int, int) {
	if !t.tty {
		return FallbackWidth, FallbackHeight
	}
	w, h, err := term.GetSize(t.fd)
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}

// Profile returns the colour profile detected for the output.
func (t *Terminal) Profile() termenv.Profile {
	return t.output.ColorProfile()
}

// Canvas creates a blank canvas the size of the terminal.
func (t *Terminal) Canvas(ascii bool) *Canvas {
	w, h := t.Size()
	return NewCanvas(w, h, WithASCII(ascii), WithProfile(t.Profile()))
}

// Clear wipes the screen and homes the cursor. It is a no-op off a terminal.
func (t *Terminal) Clear() {
	if t.tty {
		t.output.ClearScreen()
	}
}

// Flush renders the canvas and ends the frame with a newline.
func (t *Terminal) Flush(c *Canvas) error {
	if err := c.Render(t.out); err != nil {
		return err
	}
	_, err := io.WriteString(t.out, "\n")
	return err
}
