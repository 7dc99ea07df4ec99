package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI returns s without color and style codes
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// OverlayLines places layer over base starting at line y. Covered base lines
// are replaced whole and base grows when the layer reaches past its end.
func OverlayLines(base []string, layer string, y int) []string {
	if y < 0 {
		y = 0
	}
	layerLines := strings.Split(layer, "\n")

	out := make([]string, len(base))
	copy(out, base)
	for len(out) < y+len(layerLines) {
		out = append(out, "")
	}
	for i, line := range layerLines {
		out[y+i] = line
	}
	return out
}

// PlaceBottom pads content so footer lands on the last line of a screen of the given height
func PlaceBottom(content, footer string, height int) string {
	if footer == "" {
		return content
	}
	if height <= 0 {
		return content + "\n" + footer
	}

	padding := height - lipgloss.Height(content) - lipgloss.Height(footer) + 1
	if padding < 1 {
		padding = 1
	}
	return content + strings.Repeat("\n", padding) + footer
}
