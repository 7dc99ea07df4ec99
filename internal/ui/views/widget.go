package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WidgetView contains everything needed to render one widget
type WidgetView struct {
	ID          string
	Label       string
	Description string
	Placeholder string
	Prefix      string
	Search      string
	Input       string // live text input view, used while focused
	Focused     bool
	Current     bool // keyboard target while no input is focused
	Disabled    bool
	Multiple    bool
	Async       bool
	Loading     bool
	Spinner     string
	Open        bool
	Rows        []RowView
	Above       int // filtered rows hidden above the window
	Below       int // filtered rows hidden below the window
}

// RowSpan maps screen lines [Top, Bottom) to a filtered list index
type RowSpan struct {
	Index  int
	Top    int
	Bottom int
}

// WidgetRenderer handles rendering of the input field and its dropdown
type WidgetRenderer struct {
	styles  *Styles
	options *OptionRenderer
}

// NewWidgetRenderer creates a new widget renderer
func NewWidgetRenderer(styles *Styles) *WidgetRenderer {
	return &WidgetRenderer{
		styles:  styles,
		options: NewOptionRenderer(styles),
	}
}

// RenderField renders label, input box and description. It also returns the
// line range of the input box inside the result.
func (wr *WidgetRenderer) RenderField(w WidgetView, width int) (string, int, int) {
	var lines []string

	if w.Label != "" {
		if w.Current {
			lines = append(lines, wr.styles.LabelCurrent.Render("› "+w.Label))
		} else {
			lines = append(lines, wr.styles.Label.Render(w.Label))
		}
	}

	inputTop := len(lines)
	box := wr.renderInput(w, width)
	lines = append(lines, box)
	inputBottom := inputTop + lipgloss.Height(box)

	if w.Description != "" {
		lines = append(lines, wr.styles.Description.Render(w.Description))
	}

	return strings.Join(lines, "\n"), inputTop, inputBottom
}

func (wr *WidgetRenderer) renderInput(w WidgetView, width int) string {
	style := wr.styles.Input
	switch {
	case w.Disabled:
		style = wr.styles.InputDisabled
	case w.Focused:
		style = wr.styles.InputFocused
	}

	boxWidth := width - style.GetHorizontalBorderSize()
	inner := boxWidth - style.GetHorizontalPadding()

	icon := wr.styles.Icon.Render("⌕ ")

	spinner := ""
	if w.Async && w.Loading {
		spinner = " " + wr.styles.Spinner.Render(w.Spinner)
	}

	text := w.Input
	if !w.Focused || text == "" {
		text = wr.staticInput(w)
	}

	avail := inner - lipgloss.Width(icon) - lipgloss.Width(spinner)
	if lipgloss.Width(text) > avail {
		text = truncate(text, avail)
	}
	pad := avail - lipgloss.Width(text)
	if pad < 0 {
		pad = 0
	}

	return style.Width(boxWidth).Render(icon + text + strings.Repeat(" ", pad) + spinner)
}

// staticInput renders the field contents without a cursor
func (wr *WidgetRenderer) staticInput(w WidgetView) string {
	if w.Prefix == "" && w.Search == "" {
		return wr.styles.Dim.Render(w.Placeholder)
	}
	return wr.styles.Prefix.Render(w.Prefix) + w.Search
}

// RenderDropdown renders the open dropdown and the line spans of its rows,
// relative to the first line of the result
func (wr *WidgetRenderer) RenderDropdown(w WidgetView, width int) (string, []RowSpan) {
	inner := width - wr.styles.Dropdown.GetHorizontalBorderSize()
	top := wr.styles.Dropdown.GetBorderTopSize()

	var (
		lines []string
		spans []RowSpan
	)

	if w.Above > 0 {
		lines = append(lines, wr.styles.Scroll.Width(inner).Render(fmt.Sprintf(" ↑ %d more", w.Above)))
	}

	if len(w.Rows) == 0 {
		lines = append(lines, wr.options.RenderEmpty(inner))
	}

	for _, row := range w.Rows {
		rendered := wr.options.RenderRow(row, w.Search, w.Multiple, inner)
		start := top + len(lines)
		rowLines := strings.Split(rendered, "\n")
		lines = append(lines, rowLines...)
		spans = append(spans, RowSpan{
			Index:  row.Index,
			Top:    start,
			Bottom: start + len(rowLines),
		})
	}

	if w.Below > 0 {
		lines = append(lines, wr.styles.Scroll.Width(inner).Render(fmt.Sprintf(" ↓ %d more", w.Below)))
	}

	return wr.styles.Dropdown.Width(inner).Render(strings.Join(lines, "\n")), spans
}
