package navigation

import (
	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// Service moves the highlighted row over the filtered list. Movement wraps
// around both ends and the index never points past the list.
type Service struct {
	state  *State
	bus    eventbus.EventBus
	widget domain.WidgetID
}

// NewService creates a new navigation service
func NewService(widget domain.WidgetID, bus eventbus.EventBus, maxRows int) *Service {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &Service{
		state: &State{
			Cursor:         -1,
			ViewportHeight: maxRows,
		},
		bus:    bus,
		widget: widget,
	}
}

// Highlighted returns the highlighted index, false when nothing is highlighted
func (s *Service) Highlighted() (int, bool) {
	if s.state.Cursor < 0 {
		return 0, false
	}
	return s.state.Cursor, true
}

// Length returns the size of the list being navigated
func (s *Service) Length() int {
	return s.state.Length
}

// GetViewportOffset returns the first visible row
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns the number of visible rows
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		s.Up()
	case DirectionDown:
		s.Down()
	}
}

// Down highlights the next row, wrapping from the last to the first
func (s *Service) Down() {
	n := s.state.Length
	if n == 0 {
		return
	}
	if s.state.Cursor < 0 {
		s.moveTo(0)
		return
	}
	s.moveTo((s.state.Cursor + 1) % n)
}

// Up highlights the previous row, wrapping from the first to the last.
// With nothing highlighted it starts at the first row, like Down.
func (s *Service) Up() {
	n := s.state.Length
	if n == 0 {
		return
	}
	if s.state.Cursor < 0 {
		s.moveTo(0)
		return
	}
	s.moveTo((s.state.Cursor - 1 + n) % n)
}

// Set highlights index, out of range indexes are ignored
func (s *Service) Set(index int) {
	if index < 0 || index >= s.state.Length {
		return
	}
	s.moveTo(index)
}

// Clear removes the highlight
func (s *Service) Clear() {
	s.moveTo(-1)
}

// Resize adapts to a replaced list of n rows: cleared when empty, clamped to
// the last row when past the end, kept otherwise
func (s *Service) Resize(n int) {
	if n < 0 {
		n = 0
	}
	s.state.Length = n
	switch {
	case n == 0:
		s.moveTo(-1)
	case s.state.Cursor >= n:
		s.moveTo(n - 1)
	default:
		s.ensureVisible()
	}
}

func (s *Service) moveTo(index int) {
	old := s.state.Cursor
	s.state.Cursor = index
	s.ensureVisible()

	if old != index {
		s.bus.Publish(domain.HighlightMovedEvent{
			Widget:   s.widget,
			OldIndex: old,
			NewIndex: index,
		})
	}
}

func (s *Service) ensureVisible() {
	maxOffset := s.state.Length - s.state.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.state.ViewportOffset > maxOffset {
		s.state.ViewportOffset = maxOffset
	}

	if s.state.Cursor < 0 {
		return
	}
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
