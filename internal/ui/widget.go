package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/domain"
	"typeahead/internal/ui/coordinator"
	"typeahead/internal/ui/services/navigation"
	"typeahead/internal/ui/viewmodels"
)

// Widget is the bubbletea component of one typeahead field. It owns the
// coordinator together with the text input and the loading spinner.
type Widget struct {
	coord   *coordinator.Coordinator
	input   textinput.Model
	spinner spinner.Model

	focused  bool
	spinning bool

	// async results arrive from the debounce goroutine
	results chan coordinator.ResultsReady
	done    chan struct{}
	closed  bool
}

// NewWidget creates a widget for cfg
func NewWidget(cfg coordinator.Config, opts ...coordinator.Option) (*Widget, error) {
	w := &Widget{
		results: make(chan coordinator.ResultsReady, 1),
		done:    make(chan struct{}),
	}

	opts = append(opts, coordinator.WithDeliver(w.deliver))
	coord, err := coordinator.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	w.coord = coord

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Placeholder
	w.input = ti

	w.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))

	w.syncInput()
	return w, nil
}

// Init starts the result listener and, for widgets created loading, the spinner
func (w *Widget) Init() tea.Cmd {
	var cmds []tea.Cmd
	if w.coord.Config().Async {
		cmds = append(cmds, w.listen())
	}
	cmds = append(cmds, w.startSpinner())
	return tea.Batch(cmds...)
}

// Update handles messages addressed to the widget
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resultsMsg:
		if msg.results.Widget != w.ID() || w.closed {
			return nil
		}
		w.coord.ApplyResults(msg.results)
		return w.listen()

	case spinner.TickMsg:
		if msg.ID != w.spinner.ID() {
			return nil
		}
		if !w.coord.Visibility.IsLoading() {
			w.spinning = false
			return nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return cmd

	default:
		if !w.focused {
			return nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return cmd
	}
}

// HandleTextKey feeds an editing key to the text input
func (w *Widget) HandleTextKey(msg tea.KeyMsg) tea.Cmd {
	if w.Disabled() || w.closed {
		return nil
	}

	before := w.input.Value()
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	if w.input.Value() == before {
		return cmd
	}

	w.coord.HandleInput(w.input.Value())
	w.syncInput()
	return tea.Batch(cmd, w.startSpinner())
}

// Navigate moves the highlight
func (w *Widget) Navigate(direction navigation.Direction) {
	if direction == navigation.DirectionUp {
		w.coord.HandleKey(coordinator.KeyUp)
		return
	}
	w.coord.HandleKey(coordinator.KeyDown)
}

// Commit selects the highlighted option
func (w *Widget) Commit() coordinator.Effects {
	return w.apply(w.coord.HandleKey(coordinator.KeyCommit))
}

// Dismiss closes the dropdown and gives up focus
func (w *Widget) Dismiss() coordinator.Effects {
	return w.apply(w.coord.HandleKey(coordinator.KeyDismiss))
}

// DismissOutside is a click outside the widget
func (w *Widget) DismissOutside() {
	w.coord.HandleDismiss()
}

// PointerEnter highlights the row under the mouse
func (w *Widget) PointerEnter(index int) {
	w.coord.HandlePointerEnter(index)
}

// PointerPick commits the clicked row
func (w *Widget) PointerPick(index int) coordinator.Effects {
	return w.apply(w.coord.HandlePointerPick(index))
}

// Focus gives the text input focus, which is an open request
func (w *Widget) Focus() tea.Cmd {
	if w.focused {
		return nil
	}
	w.focused = true
	w.coord.HandleFocus(true)
	return w.input.Focus()
}

// Blur takes focus away, which is a close request
func (w *Widget) Blur() {
	if !w.focused {
		return
	}
	w.focused = false
	w.input.Blur()
	w.coord.HandleFocus(false)
}

// SetWidth sizes the text input for the terminal width
func (w *Widget) SetWidth(width int) {
	w.input.Width = width
}

// ID returns the widget id
func (w *Widget) ID() domain.WidgetID {
	return w.coord.Config().ID
}

// Label returns the widget label
func (w *Widget) Label() string {
	return w.coord.Config().Label
}

// Disabled reports whether the widget ignores editing
func (w *Widget) Disabled() bool {
	return w.coord.Config().Disabled
}

// Focused reports whether the text input has focus
func (w *Widget) Focused() bool {
	return w.focused
}

// IsOpen reports whether the dropdown is shown
func (w *Widget) IsOpen() bool {
	return w.coord.Visibility.IsOpen()
}

// Value returns the current selection
func (w *Widget) Value() domain.Value {
	return w.coord.Selection.Value()
}

// InputValue returns the text of the input field
func (w *Widget) InputValue() string {
	return w.input.Value()
}

// ViewInput collects what the view model needs to render the widget
func (w *Widget) ViewInput() viewmodels.WidgetInput {
	var render viewmodels.OptionRenderFunc
	if r := w.coord.Config().RenderOption; r != nil {
		render = viewmodels.OptionRenderFunc(r)
	}
	return viewmodels.WidgetInput{
		State:   w.coord.State(),
		Input:   w.input.View(),
		Spinner: w.spinner.View(),
		Focused: w.focused,
		Render:  render,
	}
}

// Dispose stops the pending search and the result listener
func (w *Widget) Dispose() {
	if w.closed {
		return
	}
	w.closed = true
	close(w.done)
	w.coord.Dispose()
}

func (w *Widget) apply(effects coordinator.Effects) coordinator.Effects {
	w.syncInput()
	if effects.BlurInput {
		w.Blur()
	}
	return effects
}

// syncInput puts the prefix and search text back into the text input
func (w *Widget) syncInput() {
	value := w.coord.Selection.Prefix() + w.coord.Search.String()
	if w.input.Value() == value {
		return
	}
	w.input.SetValue(value)
	w.input.CursorEnd()
}

func (w *Widget) startSpinner() tea.Cmd {
	if w.spinning || !w.coord.Visibility.IsLoading() {
		return nil
	}
	w.spinning = true
	return w.spinner.Tick
}

// listen waits for the next async result
func (w *Widget) listen() tea.Cmd {
	results, done := w.results, w.done
	return func() tea.Msg {
		select {
		case r := <-results:
			return resultsMsg{results: r}
		case <-done:
			return nil
		}
	}
}

// deliver runs on the debounce goroutine. A result nobody picked up yet is
// replaced by the newer one.
func (w *Widget) deliver(r coordinator.ResultsReady) {
	for {
		select {
		case <-w.done:
			return
		case w.results <- r:
			return
		default:
		}
		select {
		case <-w.results:
		default:
		}
	}
}
