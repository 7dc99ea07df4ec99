package coordinator

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"typeahead/internal/debounce"
	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/logic"
	"typeahead/internal/ui/services/navigation"
	"typeahead/internal/ui/services/search"
	"typeahead/internal/ui/services/selection"
	"typeahead/internal/ui/services/visibility"
	"typeahead/internal/ui/state"
)

// Coordinator manages the services of one widget and the transitions between
// them. All methods except the deliver hook run on the owner's event loop.
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Selection  *selection.Service
	Search     *search.Service
	Visibility *visibility.Service

	cfg      Config
	bus      eventbus.EventBus
	clock    clock.Clock
	filtered []domain.Option

	debouncer  *debounce.Debouncer[searchRequest]
	generation uint64

	deliverMu sync.Mutex
	deliver   func(ResultsReady)

	subs     []func()
	disposed bool
}

// New creates a coordinator for cfg
func New(cfg Config, opts ...Option) (*Coordinator, error) {
	if err := domain.ValidateOptions(cfg.Options); err != nil {
		return nil, errors.Wrapf(err, "widget %q", cfg.ID)
	}
	if cfg.AsyncWait < 0 {
		return nil, errors.Newf("widget %q: negative async wait %s", cfg.ID, cfg.AsyncWait)
	}
	if cfg.AsyncWait == 0 {
		cfg.AsyncWait = DefaultAsyncWait
	}

	c := &Coordinator{
		cfg: cfg,
		bus: eventbus.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = clock.New()
	}

	c.Navigation = navigation.NewService(cfg.ID, c.bus, cfg.MaxRows)
	c.Search = search.NewService(cfg.ID, c.bus, cfg.Async, cfg.OnInputChange)
	c.Visibility = visibility.NewService(cfg.ID, c.bus, cfg.Async, cfg.Loading)
	c.Selection = selection.NewService(cfg.ID, c.bus, cfg.Multiple, cfg.Value, cfg.OnChange)

	if cfg.Async {
		c.debouncer = debounce.New(cfg.AsyncWait, c.runSearch, debounce.WithClock(c.clock))
	} else {
		c.refilter()
	}

	log.Debug("widget created", "widget", cfg.ID, "options", len(cfg.Options), "multiple", cfg.Multiple, "async", cfg.Async)
	return c, nil
}

// Config returns the configuration the widget was built with
func (c *Coordinator) Config() Config {
	return c.cfg
}

// SetDeliver replaces the async result hook
func (c *Coordinator) SetDeliver(deliver func(ResultsReady)) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()
	c.deliver = deliver
}

// Observe subscribes handler to bus events until Dispose
func (c *Coordinator) Observe(eventType eventbus.EventType, handler eventbus.EventHandler) {
	c.subs = append(c.subs, c.bus.Subscribe(eventType, handler))
}

// Filtered returns the current filtered list
func (c *Coordinator) Filtered() []domain.Option {
	return c.filtered
}

// State returns a snapshot of the widget state
func (c *Coordinator) State() *state.WidgetState {
	s := state.NewWidgetState(c.cfg.ID)
	s.Label = c.cfg.Label
	s.Placeholder = c.cfg.Placeholder
	s.Description = c.cfg.Description
	s.Multiple = c.cfg.Multiple
	s.Async = c.cfg.Async
	s.Disabled = c.cfg.Disabled

	s.SearchText = c.Search.Text()
	s.Open = c.Visibility.IsOpen()
	s.Loading = c.Visibility.IsLoading()

	s.Filtered = append([]domain.Option{}, c.filtered...)
	if i, ok := c.Navigation.Highlighted(); ok {
		s.Highlighted = i
	}
	s.ViewportOffset = c.Navigation.GetViewportOffset()
	s.ViewportHeight = c.Navigation.GetViewportHeight()

	s.Selected = c.Selection.Value().Options
	s.Prefix = c.Selection.Prefix()
	return s
}

// HandleInput takes the raw text of the input field after an edit
func (c *Coordinator) HandleInput(raw string) Effects {
	if c.disposed || c.cfg.Disabled {
		return Effects{}
	}

	text, changed := c.Search.Update(raw, c.Selection.Prefix())
	if !c.cfg.Async {
		c.refilter()
		return Effects{Handled: true}
	}
	if changed {
		c.schedule(text)
	}
	return Effects{Handled: true}
}

// HandleKey runs a keyboard action. Every action is consumed.
func (c *Coordinator) HandleKey(key Key) Effects {
	if c.disposed {
		return Effects{}
	}

	switch key {
	case KeyDown:
		c.Navigation.Down()
	case KeyUp:
		c.Navigation.Up()
	case KeyCommit:
		return c.commitHighlighted()
	case KeyDismiss:
		c.Visibility.Close()
		return Effects{BlurInput: true, Handled: true}
	default:
		return Effects{}
	}
	return Effects{Handled: true}
}

// HandleFocus turns focus changes into open and close requests
func (c *Coordinator) HandleFocus(focused bool) Effects {
	if c.disposed {
		return Effects{}
	}
	c.Visibility.RequestOpenChange(focused)
	return Effects{Handled: true}
}

// HandleDismiss is a close request from outside the widget, such as a click elsewhere
func (c *Coordinator) HandleDismiss() Effects {
	if c.disposed {
		return Effects{}
	}
	c.Visibility.RequestOpenChange(false)
	return Effects{Handled: true}
}

// HandlePointerEnter highlights the row under the pointer
func (c *Coordinator) HandlePointerEnter(index int) Effects {
	if c.disposed {
		return Effects{}
	}
	c.Navigation.Set(index)
	return Effects{Handled: true}
}

// HandlePointerPick highlights and commits the picked row
func (c *Coordinator) HandlePointerPick(index int) Effects {
	if c.disposed || index < 0 || index >= len(c.filtered) {
		return Effects{}
	}
	c.Navigation.Set(index)
	return c.commitHighlighted()
}

// ApplyResults applies an async result. Results of superseded or cancelled
// searches are dropped.
func (c *Coordinator) ApplyResults(r ResultsReady) Effects {
	if c.disposed || !c.cfg.Async {
		return Effects{}
	}
	if r.Generation != c.generation {
		log.Debug("dropping stale results", "widget", c.cfg.ID, "generation", r.Generation, "latest", c.generation)
		return Effects{}
	}

	c.setFiltered(r.Query, r.Results)
	c.Visibility.ResultsReady()
	return Effects{Handled: true}
}

// Dispose stops the pending search and releases subscriptions. The
// coordinator ignores every event afterwards.
func (c *Coordinator) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	if c.debouncer != nil {
		c.debouncer.Stop()
	}
	c.SetDeliver(nil)

	for _, unsubscribe := range c.subs {
		unsubscribe()
	}
	c.subs = nil

	log.Debug("widget disposed", "widget", c.cfg.ID)
}

// Disposed reports whether Dispose was called
func (c *Coordinator) Disposed() bool {
	return c.disposed
}

func (c *Coordinator) commitHighlighted() Effects {
	i, ok := c.Navigation.Highlighted()
	if !ok || i >= len(c.filtered) {
		return Effects{Handled: true}
	}

	if done := c.Selection.ToggleOrSet(c.filtered[i]); !done {
		return Effects{Handled: true}
	}

	c.Visibility.Close()
	c.resetSearch()
	return Effects{BlurInput: true, Handled: true}
}

// resetSearch puts the typed text back to its initial value after a single commit
func (c *Coordinator) resetSearch() {
	c.Search.Reset()
	if !c.cfg.Async {
		c.refilter()
		return
	}

	c.generation++
	c.debouncer.Cancel()
	c.Visibility.CancelLoading()
}

func (c *Coordinator) schedule(text string) {
	c.generation++
	c.Visibility.BeginLoading()

	c.bus.Publish(domain.SearchScheduledEvent{
		Widget:     c.cfg.ID,
		Generation: c.generation,
		Query:      text,
	})
	c.debouncer.Call(searchRequest{generation: c.generation, text: text})
}

// runSearch runs on the debounce timer goroutine. It only reads the
// immutable configuration and hands the result to the deliver hook.
func (c *Coordinator) runSearch(req searchRequest) {
	text := req.text
	results := logic.Apply(c.cfg.Options, &text, c.cfg.FilterOptions)

	c.deliverMu.Lock()
	deliver := c.deliver
	c.deliverMu.Unlock()

	if deliver == nil {
		log.Debug("no deliver hook, dropping results", "widget", c.cfg.ID)
		return
	}
	deliver(ResultsReady{
		Widget:     c.cfg.ID,
		Generation: req.generation,
		Query:      text,
		Results:    results,
	})
}

func (c *Coordinator) refilter() {
	results := logic.Apply(c.cfg.Options, c.Search.Text(), c.cfg.FilterOptions)
	c.setFiltered(c.Search.String(), results)
}

func (c *Coordinator) setFiltered(query string, results []domain.Option) {
	c.filtered = results
	c.Navigation.Resize(len(results))

	c.bus.Publish(domain.ResultsAppliedEvent{
		Widget: c.cfg.ID,
		Query:  query,
		Count:  len(results),
		Async:  c.cfg.Async,
	})
}
