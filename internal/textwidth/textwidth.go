package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the display-cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 && text != "" {
		// Some grapheme clusters report zero through runewidth.
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// CenterPad returns text left-padded so it appears horizontally centered in
// width cells: the pad is (width - Width(text)) / 2, never negative.
func CenterPad(text string, width int) string {
	pad := (width - Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// Truncate returns the longest grapheme-safe prefix of text that fits in
// width cells.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	g := uniseg.NewGraphemes(text)
	used := 0
	var sb strings.Builder
	for g.Next() {
		cw := Width(g.Str())
		if used+cw > width {
			break
		}
		sb.WriteString(g.Str())
		used += cw
	}
	return sb.String()
}
