package state

import (
	"github.com/samber/lo"

	"typeahead/internal/domain"
)

// WidgetState contains all the state of one widget, snapshotted after every transition
type WidgetState struct {
	ID domain.WidgetID

	// Presentation
	Label       string
	Placeholder string
	Description string

	// Mode flags, fixed for the widget's lifetime
	Multiple bool
	Async    bool
	Disabled bool

	// Search state
	SearchText *string // nil = never searched (async only)
	Open       bool
	Loading    bool

	// Filtered list and highlight
	Filtered       []domain.Option
	Highlighted    int // -1 when nothing is highlighted
	ViewportOffset int
	ViewportHeight int

	// Selection
	Selected []domain.Option
	Prefix   string
}

// NewWidgetState creates an empty state for a widget
func NewWidgetState(id domain.WidgetID) *WidgetState {
	return &WidgetState{
		ID:          id,
		Highlighted: -1,
	}
}

// InputValue is the text shown in the input field: the selection prefix followed by the search text
func (s *WidgetState) InputValue() string {
	if s.SearchText == nil {
		return s.Prefix
	}
	return s.Prefix + *s.SearchText
}

// HighlightedOption returns the option under the highlight
func (s *WidgetState) HighlightedOption() (domain.Option, bool) {
	if s.Highlighted < 0 || s.Highlighted >= len(s.Filtered) {
		return domain.Option{}, false
	}
	return s.Filtered[s.Highlighted], true
}

// IsSelected reports whether option is part of the selection
func (s *WidgetState) IsSelected(option domain.Option) bool {
	return lo.ContainsBy(s.Selected, func(o domain.Option) bool {
		return o.Equal(option)
	})
}

// Value returns the selection as reported to change listeners
func (s *WidgetState) Value() domain.Value {
	return domain.Value{
		Multiple: s.Multiple,
		Options:  append([]domain.Option{}, s.Selected...),
	}
}

// VisibleRange returns the half-open range of filtered rows inside the dropdown window
func (s *WidgetState) VisibleRange() (int, int) {
	start := s.ViewportOffset
	if start > len(s.Filtered) {
		start = len(s.Filtered)
	}
	end := len(s.Filtered)
	if s.ViewportHeight > 0 && start+s.ViewportHeight < end {
		end = start + s.ViewportHeight
	}
	return start, end
}
