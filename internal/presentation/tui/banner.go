package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the stagedash banner to w in the accent colour.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	lines := []string{
		"     _                      _           _     ",
		" ___| |_ __ _  __ _  ___  __| | __ _ ___| |__  ",
		"/ __| __/ _` |/ _` |/ _ \\/ _` |/ _` / __| '_ \\ ",
		"\\__ \\ || (_| | (_| |  __/ (_| | (_| \\__ \\ | | |",
		"|___/\\__\\__,_|\\__, |\\___|\\__,_|\\__,_|___/_| |_|",
		"              |___/                            ",
	}

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintln(w, p.String(line).Foreground(p.Color(hexAccent)))
	}
	fmt.Fprintln(w)
}
