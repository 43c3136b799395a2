package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"   ___                   ", "#38bdf8"},
	{"  / __| |_ __ _ _ _ ___  ", "#60a5fa"},
	{"  \\__ \\  _/ _` | '_(_-<  ", "#818cf8"},
	{"  |___/\\__\\__,_|_| /__/  ", "#a78bfa"},
}

// PrintBanner writes the game banner and the running side to w. Colours are
// dropped when w is not a colour-capable terminal.
func PrintBanner(w io.Writer, side string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w, out.String("  drossy stars · "+side).Faint())
	fmt.Fprintln(w)
}
