package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"typeahead/internal/ui/state"
	"typeahead/internal/ui/views"
)

// WidgetInput carries the live bubbles components of a widget
type WidgetInput struct {
	State   *state.WidgetState
	Input   string // text input view
	Spinner string // spinner view
	Focused bool
	Current bool // keyboard target while no input is focused
	Render  OptionRenderFunc
}

// ViewModel transforms widget state into view-ready data
type ViewModel struct {
	title    string
	suffix   string
	width    int
	height   int
	help     help.Model
	helpKeys help.KeyMap
	status   string
}

// NewViewModel creates a new view model
func NewViewModel(title string) *ViewModel {
	return &ViewModel{
		title: title,
		help:  help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelpKeys sets the bindings listed in the footer
func (vm *ViewModel) SetHelpKeys(keys help.KeyMap) {
	vm.helpKeys = keys
}

// SetTitleSuffix sets text shown after the title
func (vm *ViewModel) SetTitleSuffix(suffix string) {
	vm.suffix = suffix
}

// SetStatus sets the status line
func (vm *ViewModel) SetStatus(status string) {
	vm.status = status
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(widgets []WidgetInput) views.ViewState {
	out := make([]views.WidgetView, 0, len(widgets))
	for _, w := range widgets {
		out = append(out, BuildWidgetView(w))
	}
	title := vm.title
	if vm.suffix != "" {
		title += " " + vm.suffix
	}
	return views.ViewState{
		Width:     vm.width,
		Height:    vm.height,
		Title:     title,
		Widgets:   out,
		Status:    vm.status,
		HelpModel: vm.help,
		HelpKeys:  vm.helpKeys,
	}
}

// BuildWidgetView creates the view of one widget. Only the rows inside the
// scroll window are materialized.
func BuildWidgetView(w WidgetInput) views.WidgetView {
	s := w.State
	view := views.WidgetView{
		ID:          string(s.ID),
		Label:       s.Label,
		Description: s.Description,
		Placeholder: s.Placeholder,
		Prefix:      s.Prefix,
		Input:       w.Input,
		Focused:     w.Focused,
		Current:     w.Current,
		Disabled:    s.Disabled,
		Multiple:    s.Multiple,
		Async:       s.Async,
		Loading:     s.Loading,
		Spinner:     w.Spinner,
		Open:        s.Open,
	}
	if s.SearchText != nil {
		view.Search = *s.SearchText
	}

	start, end := s.VisibleRange()
	view.Above = start
	view.Below = len(s.Filtered) - end

	view.Rows = make([]views.RowView, 0, end-start)
	for i := start; i < end; i++ {
		option := s.Filtered[i]
		view.Rows = append(view.Rows, views.RowView{
			Index:       i,
			Lines:       OptionLines(option, w.Render),
			Label:       MatchLine(option, w.Render),
			Highlighted: i == s.Highlighted,
			Checked:     s.Multiple && s.IsSelected(option),
		})
	}
	return view
}
