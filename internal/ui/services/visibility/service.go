package visibility

import (
	"github.com/charmbracelet/log"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// Service decides when the dropdown is open and when the spinner shows.
// An asynchronous widget opens itself once results are ready, so open
// requests from focus changes are ignored there while close requests are not.
type Service struct {
	state  *State
	bus    eventbus.EventBus
	widget domain.WidgetID
}

// NewService creates a new visibility service. loading is the initial
// spinner state, kept until the first async result lands.
func NewService(widget domain.WidgetID, bus eventbus.EventBus, async, loading bool) *Service {
	return &Service{
		state: &State{
			Async:   async,
			Loading: loading,
		},
		bus:    bus,
		widget: widget,
	}
}

// IsOpen reports whether the dropdown is shown
func (s *Service) IsOpen() bool {
	return s.state.Open
}

// IsLoading reports whether the spinner is shown
func (s *Service) IsLoading() bool {
	return s.state.Loading
}

// RequestOpenChange handles an open or close request from focus handling or
// the surrounding layout. It reports whether the request was honored.
func (s *Service) RequestOpenChange(open bool) bool {
	if s.state.Async && open {
		log.Debug("ignoring open request on async widget", "widget", s.widget)
		return false
	}
	s.setOpen(open)
	return true
}

// Close closes the dropdown regardless of mode
func (s *Service) Close() {
	s.setOpen(false)
}

// BeginLoading marks an async search as pending
func (s *Service) BeginLoading() {
	s.setLoading(true)
}

// CancelLoading clears the spinner without opening, used when the pending
// search is dropped
func (s *Service) CancelLoading() {
	s.setLoading(false)
}

// ResultsReady opens the dropdown and clears the spinner
func (s *Service) ResultsReady() {
	s.setOpen(true)
	s.setLoading(false)
}

func (s *Service) setOpen(open bool) {
	if s.state.Open == open {
		return
	}
	s.state.Open = open
	s.bus.Publish(domain.OpenChangedEvent{Widget: s.widget, Open: open})
}

func (s *Service) setLoading(loading bool) {
	if s.state.Loading == loading {
		return
	}
	s.state.Loading = loading
	s.bus.Publish(domain.LoadingChangedEvent{Widget: s.widget, Loading: loading})
}
