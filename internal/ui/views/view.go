package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	Title     string
	Widgets   []WidgetView
	Status    string
	HelpModel help.Model
	HelpKeys  help.KeyMap
}

// WidgetLayout records where a widget landed on screen, in absolute lines
type WidgetLayout struct {
	Top         int
	Bottom      int
	InputTop    int
	InputBottom int
	DropTop     int // dropdown lines [DropTop, DropBottom), empty while closed
	DropBottom  int
	Rows        []RowSpan
}

// Layout is the screen geometry of the last render, used for mouse hit testing
type Layout struct {
	Left    int // first column of widget content
	Widgets []WidgetLayout
}

// WidgetAt returns the widget whose field covers line y
func (l Layout) WidgetAt(y int) (int, bool) {
	for i, w := range l.Widgets {
		if y >= w.Top && y < w.Bottom {
			return i, true
		}
	}
	return 0, false
}

// RowAt returns the widget and filtered index of the dropdown row covering line y
func (l Layout) RowAt(y int) (int, int, bool) {
	for i, w := range l.Widgets {
		for _, r := range w.Rows {
			if y >= r.Top && y < r.Bottom {
				return i, r.Index, true
			}
		}
	}
	return 0, 0, false
}

// InDropdown reports whether line y is covered by any open dropdown
func (l Layout) InDropdown(y int) bool {
	for _, w := range l.Widgets {
		if y >= w.DropTop && y < w.DropBottom {
			return true
		}
	}
	return false
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	widget *WidgetRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		widget: NewWidgetRenderer(styles),
	}
}

// Styles returns the styles used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// FieldWidth is the widget width for a terminal of the given width
func FieldWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	width := termWidth - 4 // Account for main container padding
	if width > 72 {
		width = 72
	}
	if width < 20 {
		width = 20
	}
	return width
}

// InputTextWidth is the room left for typed text inside the input box:
// border, padding, search icon, spinner and cursor
func InputTextWidth(termWidth int) int {
	return FieldWidth(termWidth) - 8
}

const (
	padTop  = 1
	padLeft = 2
)

// Render produces the complete view and the geometry needed for mouse handling
func (r *Renderer) Render(state ViewState) (string, Layout) {
	width := FieldWidth(state.Width)
	layout := Layout{Left: padLeft}

	lines := make([]string, padTop)

	title := state.Title
	if title == "" {
		title = "typeahead"
	}
	lines = append(lines, strings.Split(r.styles.Title.Render(title), "\n")...)

	for _, w := range state.Widgets {
		field, inputTop, inputBottom := r.widget.RenderField(w, width)
		top := len(lines)
		lines = append(lines, strings.Split(field, "\n")...)
		layout.Widgets = append(layout.Widgets, WidgetLayout{
			Top:         top,
			Bottom:      len(lines),
			InputTop:    top + inputTop,
			InputBottom: top + inputBottom,
		})
		lines = append(lines, "")
	}

	if state.Status != "" {
		lines = append(lines, strings.Split(r.styles.Status.Render(state.Status), "\n")...)
	}

	// Dropdowns float over everything below their input box
	for i, w := range state.Widgets {
		if !w.Open {
			continue
		}
		dropdown, spans := r.widget.RenderDropdown(w, width)
		y := layout.Widgets[i].InputBottom
		lines = OverlayLines(lines, dropdown, y)
		for j := range spans {
			spans[j].Top += y
			spans[j].Bottom += y
		}
		layout.Widgets[i].Rows = spans
		layout.Widgets[i].DropTop = y
		layout.Widgets[i].DropBottom = y + lipgloss.Height(dropdown)
	}

	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	content := strings.Join(lines, "\n")

	footer := ""
	if state.HelpKeys != nil {
		footer = indent + state.HelpModel.View(state.HelpKeys)
	}
	return PlaceBottom(content, footer, state.Height), layout
}
