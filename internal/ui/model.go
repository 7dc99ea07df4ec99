package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"typeahead/internal/config"
	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/coordinator"
	"typeahead/internal/ui/input"
	inputtypes "typeahead/internal/ui/input/types"
	"typeahead/internal/ui/services/navigation"
	"typeahead/internal/ui/viewmodels"
	"typeahead/internal/ui/views"
)

// ReadyMarker is shown in the title when the model runs under the end to end tests
const ReadyMarker = "__READY__"

// Model is the demo page: a stack of typeahead widgets sharing one keyboard
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	widgets []*Widget
	focused int // widget the keyboard acts on

	width       int
	height      int
	status      string
	inPagerMode bool // tracks if we're currently in pager mode
	readyMarker bool

	inputHandler *input.Handler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	layout       views.Layout // geometry of the last frame, for the mouse

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// ModelOption configures a Model
type ModelOption func(*modelOptions)

type modelOptions struct {
	coordinator []coordinator.Option
	readyMarker bool
}

// WithCoordinatorOptions passes options to every widget's coordinator
func WithCoordinatorOptions(opts ...coordinator.Option) ModelOption {
	return func(o *modelOptions) {
		o.coordinator = append(o.coordinator, opts...)
	}
}

// WithReadyMarker shows ReadyMarker once the first frame is drawn
func WithReadyMarker() ModelOption {
	return func(o *modelOptions) {
		o.readyMarker = true
	}
}

// NewModel creates the page for cfg
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts ...ModelOption) (*Model, error) {
	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}
	if bus == nil {
		bus = eventbus.Nop{}
	}
	if len(cfg.Widgets) == 0 {
		return nil, errors.New("no widgets configured")
	}

	keys := input.DefaultKeyMap()
	title := cfg.Title
	if title == "" {
		title = "Typeahead"
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		readyMarker:  o.readyMarker,
		inputHandler: input.New(keys),
		viewModel:    viewmodels.NewViewModel(title),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
	}

	coordOpts := append([]coordinator.Option{coordinator.WithBus(bus)}, o.coordinator...)
	for i, wc := range cfg.Widgets {
		wcfg, err := widgetConfig(i, wc)
		if err != nil {
			m.Close()
			return nil, err
		}
		label := wc.Label
		if label == "" {
			label = string(wcfg.ID)
		}
		wcfg.OnChange = func(v domain.Value) {
			m.status = fmt.Sprintf("%s: %s", label, strings.Join(v.Labels(), ", "))
		}

		w, err := NewWidget(wcfg, coordOpts...)
		if err != nil {
			m.Close()
			return nil, err
		}
		m.widgets = append(m.widgets, w)
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init starts every widget
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.widgets))
	for _, w := range m.widgets {
		cmds = append(cmds, w.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		for _, w := range m.widgets {
			w.SetWidth(views.InputTextWidth(msg.Width))
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case resultsMsg, spinner.TickMsg:
		// Each widget picks its own results and spinner ticks
		cmds := make([]tea.Cmd, 0, len(m.widgets))
		for _, w := range m.widgets {
			cmds = append(cmds, w.Update(msg))
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		log.Debug("event", "type", msg.Event.Type())
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Warn("help pager failed", "err", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case quitMsg:
		return m, tea.Quit

	default:
		// Cursor blinks and other text input traffic
		if len(m.widgets) == 0 {
			return m, nil
		}
		return m, m.current().Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	keys := m.inputHandler.Keys()
	editing := m.inputHandler.CurrentMode() == inputtypes.ModeEdit
	if editing {
		m.viewModel.SetHelpKeys(input.EditHelp{KeyMap: keys})
	} else {
		m.viewModel.SetHelpKeys(input.NormalHelp{KeyMap: keys})
	}
	m.viewModel.SetStatus(m.status)
	if m.readyMarker {
		m.viewModel.SetTitleSuffix(ReadyMarker)
	}

	inputs := make([]viewmodels.WidgetInput, 0, len(m.widgets))
	for i, w := range m.widgets {
		in := w.ViewInput()
		in.Current = !editing && i == m.focused
		inputs = append(inputs, in)
	}

	view, layout := m.renderer.Render(m.viewModel.BuildViewState(inputs))
	m.layout = layout
	return view
}

// Widgets returns the widgets in page order
func (m *Model) Widgets() []*Widget {
	return m.widgets
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// FocusedIndex returns the widget the keyboard acts on
func (m *Model) FocusedIndex() int {
	return m.focused
}

// Close disposes every widget
func (m *Model) Close() {
	for _, w := range m.widgets {
		w.Dispose()
	}
}

func (m *Model) current() *Widget {
	return m.widgets[m.focused]
}

func (m *Model) context() *input.ModelContext {
	ctx := &input.ModelContext{
		Focused:  m.focused,
		Disabled: make([]bool, len(m.widgets)),
	}
	for i, w := range m.widgets {
		ctx.Disabled[i] = w.Disabled()
	}
	if len(m.widgets) > 0 {
		ctx.Open = m.current().IsOpen()
	}
	return ctx
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	return m.processActions(m.inputHandler.HandleKey(msg, m.context()))
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(actions))
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	if len(m.widgets) == 0 {
		return nil
	}

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.current().Navigate(navigation.Direction(a.Direction))
	case inputtypes.CommitAction:
		return m.applyEffects(m.focused, m.current().Commit())
	case inputtypes.DismissAction:
		return m.applyEffects(m.focused, m.current().Dismiss())
	case inputtypes.TextKeyAction:
		return m.current().HandleTextKey(a.Msg)
	case inputtypes.CycleFocusAction:
		return m.cycleFocus(a.Delta)
	case inputtypes.FocusWidgetAction:
		m.focused = a.Index
		return m.current().Focus()
	case inputtypes.BlurWidgetAction:
		m.current().Blur()
	case inputtypes.ToggleHelpAction:
		return m.showHelp()
	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }
	}
	return nil
}

// applyEffects leaves edit mode when the focused widget blurred itself
func (m *Model) applyEffects(index int, effects coordinator.Effects) tea.Cmd {
	if !effects.BlurInput || index != m.focused {
		return nil
	}
	if m.inputHandler.CurrentMode() != inputtypes.ModeEdit {
		return nil
	}
	return m.processActions(m.inputHandler.SetMode(inputtypes.ModeNormal, m.context()))
}

// cycleFocus moves to the next widget. While editing, disabled widgets are
// skipped and the new widget takes over the keyboard.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	n := len(m.widgets)
	editing := m.inputHandler.CurrentMode() == inputtypes.ModeEdit

	next := m.focused
	for i := 0; i < n; i++ {
		next = ((next+delta)%n + n) % n
		if !editing || !m.widgets[next].Disabled() {
			break
		}
	}
	if next == m.focused {
		return nil
	}

	if !editing {
		m.focused = next
		return nil
	}
	if m.widgets[next].Disabled() {
		return nil
	}
	m.current().Blur()
	m.focused = next
	return m.current().Focus()
}

// focusWidget puts the widget at index into edit mode
func (m *Model) focusWidget(index int) tea.Cmd {
	if m.widgets[index].Disabled() {
		return nil
	}
	if index != m.focused {
		m.current().Blur()
		m.focused = index
	}
	cmd := m.processActions(m.inputHandler.SetMode(inputtypes.ModeEdit, m.context()))
	return tea.Batch(cmd, m.current().Focus())
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(m.widgets) == 0 {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if i, row, ok := m.layout.RowAt(msg.Y); ok {
			m.widgets[i].PointerEnter(row)
		}
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
	default:
		return nil
	}

	if i, row, ok := m.layout.RowAt(msg.Y); ok {
		return m.applyEffects(i, m.widgets[i].PointerPick(row))
	}
	if m.layout.InDropdown(msg.Y) {
		return nil
	}
	if i, ok := m.layout.WidgetAt(msg.Y); ok {
		wl := m.layout.Widgets[i]
		if msg.Y >= wl.InputTop && msg.Y < wl.InputBottom {
			return m.focusWidget(i)
		}
	}

	// Anywhere else is outside every widget
	for _, w := range m.widgets {
		w.DismissOutside()
	}
	return m.processActions(m.inputHandler.SetMode(inputtypes.ModeNormal, m.context()))
}

// showHelp returns a command that shows help using ov pager
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil {
		log.Warn("help pager needs a program")
		return nil
	}
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
