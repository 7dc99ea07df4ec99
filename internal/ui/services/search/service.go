package search

import (
	"strings"
	"unicode/utf8"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// Service owns the search text typed after the selection prefix
type Service struct {
	state   *State
	bus     eventbus.EventBus
	widget  domain.WidgetID
	onInput InputFunc
}

// NewService creates a new search service. Synchronous widgets start with an
// empty search, asynchronous ones with none at all.
func NewService(widget domain.WidgetID, bus eventbus.EventBus, async bool, onInput InputFunc) *Service {
	s := &Service{
		state:   &State{Async: async},
		bus:     bus,
		widget:  widget,
		onInput: onInput,
	}
	s.Reset()
	return s
}

// Text returns the search text, nil when nothing was typed yet
func (s *Service) Text() *string {
	if s.state.Text == nil {
		return nil
	}
	text := *s.state.Text
	return &text
}

// String returns the search text or "" when there is none
func (s *Service) String() string {
	if s.state.Text == nil {
		return ""
	}
	return *s.state.Text
}

// Searched reports whether a search text is defined
func (s *Service) Searched() bool {
	return s.state.Text != nil
}

// Update takes the raw input field text, strips prefix from it and stores the
// remainder. It reports the new search text and whether it differs from the
// previous one.
func (s *Service) Update(raw, prefix string) (string, bool) {
	text := StripPrefix(raw, prefix)

	if s.onInput != nil {
		s.onInput(text)
	}

	changed := s.state.Text == nil || *s.state.Text != text
	s.state.Text = &text

	if changed {
		s.bus.Publish(domain.InputChangedEvent{
			Widget: s.widget,
			Text:   text,
		})
	}
	return text, changed
}

// Reset restores the initial search text
func (s *Service) Reset() {
	if s.state.Async {
		s.state.Text = nil
		return
	}
	empty := ""
	s.state.Text = &empty
}

// StripPrefix removes the selection prefix from the raw field text. When the
// field no longer starts with the prefix, everything past the prefix length
// is kept; a field shorter than the prefix yields "".
func StripPrefix(raw, prefix string) string {
	if prefix == "" {
		return raw
	}
	if rest, ok := strings.CutPrefix(raw, prefix); ok {
		return rest
	}

	n := utf8.RuneCountInString(prefix)
	if utf8.RuneCountInString(raw) <= n {
		return ""
	}
	runes := []rune(raw)
	return string(runes[n:])
}
