package coordinator

import (
	"time"

	"github.com/benbjohnson/clock"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/logic"
)

// DefaultAsyncWait is the debounce wait of asynchronous widgets
const DefaultAsyncWait = 2 * time.Second

// RenderFunc replaces the default rendering of a dropdown row
type RenderFunc func(option domain.Option) string

// Config holds the construction-time options of a widget
type Config struct {
	ID            domain.WidgetID
	Options       []domain.Option
	Label         string
	Placeholder   string
	Description   string
	Multiple      bool
	Async         bool
	AsyncWait     time.Duration   // zero means DefaultAsyncWait
	Value         []domain.Option // initial selection, nil when not supplied
	OnChange      func(domain.Value)
	OnInputChange func(text string)
	FilterOptions logic.FilterFunc
	RenderOption  RenderFunc
	Loading       bool
	Disabled      bool
	MaxRows       int
}

// Key is a keyboard action the widget reacts to
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyCommit
	KeyDismiss
)

func (k Key) String() string {
	switch k {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyCommit:
		return "commit"
	case KeyDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Effects tells the host what to do after a transition
type Effects struct {
	BlurInput bool // the text input loses focus
	Handled   bool // the event was consumed and must not reach the text input
}

// ResultsReady carries an asynchronous filter result back to the event loop
type ResultsReady struct {
	Widget     domain.WidgetID
	Generation uint64
	Query      string
	Results    []domain.Option
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithBus publishes widget events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(c *Coordinator) {
		c.bus = bus
	}
}

// WithClock sets the time source of the async debounce
func WithClock(clk clock.Clock) Option {
	return func(c *Coordinator) {
		c.clock = clk
	}
}

// WithDeliver sets the hook receiving async results. It is called from the
// debounce timer goroutine and must hand the result over to the owner's
// event loop rather than call ApplyResults directly.
func WithDeliver(deliver func(ResultsReady)) Option {
	return func(c *Coordinator) {
		c.deliver = deliver
	}
}

type searchRequest struct {
	generation uint64
	text       string
}
