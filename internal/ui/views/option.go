package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowView is one dropdown row ready for rendering
type RowView struct {
	Index       int      // position in the filtered list
	Lines       []string // plain text, one entry per line
	Label       string   // line to highlight matches in, "" for none
	Highlighted bool
	Checked     bool
}

// OptionRenderer handles rendering of dropdown rows
type OptionRenderer struct {
	styles *Styles
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{
		styles: styles,
	}
}

// RenderRow renders a row at the given width. Multiple-select rows carry a
// check mark at the right of their first line.
func (o *OptionRenderer) RenderRow(row RowView, query string, multiple bool, width int) string {
	style := o.styles.RowAlt
	switch {
	case row.Highlighted:
		style = o.styles.RowHighlight
	case row.Index%2 == 0:
		style = o.styles.Row
	}

	inner := width - style.GetHorizontalPadding()
	if inner < 1 {
		inner = 1
	}

	lines := row.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		mark := ""
		if multiple && i == 0 {
			mark = o.checkMark(row.Checked)
		}

		text := truncate(line, inner-lipgloss.Width(mark)-1)
		if query != "" && row.Label != "" && line == row.Label {
			text = o.highlightMatch(text, query, style)
		}

		pad := inner - lipgloss.Width(text) - lipgloss.Width(mark)
		if pad < 0 {
			pad = 0
		}
		out = append(out, style.Width(width).Render(text+strings.Repeat(" ", pad)+mark))
	}
	return strings.Join(out, "\n")
}

// RenderEmpty renders the row shown when nothing matches
func (o *OptionRenderer) RenderEmpty(width int) string {
	return o.styles.Empty.Width(width).Render("No results were found")
}

func (o *OptionRenderer) checkMark(checked bool) string {
	if checked {
		return o.styles.Check.Render("[x]")
	}
	return o.styles.Dim.Render("[ ]")
}

// highlightMatch highlights the first case-sensitive occurrence of query
func (o *OptionRenderer) highlightMatch(text, query string, base lipgloss.Style) string {
	index := strings.Index(text, query)
	if index == -1 {
		return text
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	return before + o.styles.Match.Inherit(base.UnsetPadding().UnsetWidth()).Render(match) + after
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
