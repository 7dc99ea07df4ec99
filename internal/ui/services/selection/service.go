package selection

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// Service handles selection logic
type Service struct {
	state    *State
	bus      eventbus.EventBus
	widget   domain.WidgetID
	onChange ChangeFunc
}

// NewService creates a new selection service. A non-nil initial selection is
// reported to onChange right away; in single mode only its first entry is kept.
func NewService(widget domain.WidgetID, bus eventbus.EventBus, multiple bool, initial []domain.Option, onChange ChangeFunc) *Service {
	s := &Service{
		state:    &State{Multiple: multiple},
		bus:      bus,
		widget:   widget,
		onChange: onChange,
	}

	if initial != nil {
		selected := append([]domain.Option{}, initial...)
		if !multiple && len(selected) > 1 {
			selected = selected[:1]
		}
		s.state.Selected = selected
		s.changed()
	}

	return s
}

// Value returns a copy of the current selection
func (s *Service) Value() domain.Value {
	return domain.Value{
		Multiple: s.state.Multiple,
		Options:  append([]domain.Option{}, s.state.Selected...),
	}
}

// Count returns the number of selected options
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// Contains reports whether option is selected
func (s *Service) Contains(option domain.Option) bool {
	return lo.ContainsBy(s.state.Selected, func(o domain.Option) bool {
		return o.Equal(option)
	})
}

// ToggleOrSet commits option. In multiple mode it is removed when present and
// appended otherwise; in single mode it replaces the selection. The result
// reports whether the commit ends the interaction.
func (s *Service) ToggleOrSet(option domain.Option) bool {
	if !s.state.Multiple {
		if len(s.state.Selected) == 1 && s.state.Selected[0].Equal(option) {
			return true
		}
		s.state.Selected = []domain.Option{option}
		s.changed()
		return true
	}

	if s.Contains(option) {
		s.state.Selected = lo.Filter(s.state.Selected, func(o domain.Option, _ int) bool {
			return !o.Equal(option)
		})
	} else {
		s.state.Selected = append(s.state.Selected, option)
	}
	s.changed()
	return false
}

// Prefix is the text shown before the search text: the selected labels joined
// by the separator, with a trailing separator when that text is not empty
func (s *Service) Prefix() string {
	if len(s.state.Selected) == 0 {
		return ""
	}
	joined := strings.Join(s.Value().Labels(), PrefixSeparator)
	if joined == "" {
		return ""
	}
	return joined + PrefixSeparator
}

func (s *Service) changed() {
	value := s.Value()
	log.Debug("selection changed", "widget", s.widget, "count", len(value.Options))

	if s.onChange != nil {
		s.onChange(value)
	}
	s.bus.Publish(domain.SelectionChangedEvent{
		Widget: s.widget,
		Value:  value,
	})
}
