package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"typeahead/internal/domain"
)

func TestInputValue(t *testing.T) {
	s := NewWidgetState("w")
	assert.Equal(t, "", s.InputValue())

	s.Prefix = "pear | "
	assert.Equal(t, "pear | ", s.InputValue())

	text := "ap"
	s.SearchText = &text
	assert.Equal(t, "pear | ap", s.InputValue())
}

func TestHighlightedOption(t *testing.T) {
	s := NewWidgetState("w")
	s.Filtered = domain.Texts("a", "b")

	_, ok := s.HighlightedOption()
	assert.False(t, ok)

	s.Highlighted = 1
	o, ok := s.HighlightedOption()
	assert.True(t, ok)
	assert.Equal(t, "b", o.String())

	s.Highlighted = 2
	_, ok = s.HighlightedOption()
	assert.False(t, ok)
}

func TestVisibleRange(t *testing.T) {
	s := NewWidgetState("w")
	s.Filtered = domain.Texts("a", "b", "c", "d", "e")

	start, end := s.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end, "no height means everything")

	s.ViewportHeight = 2
	s.ViewportOffset = 3
	start, end = s.VisibleRange()
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)

	s.ViewportOffset = 1
	start, end = s.VisibleRange()
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
}

func TestIsSelected(t *testing.T) {
	s := NewWidgetState("w")
	s.Selected = []domain.Option{domain.Record(map[string]string{"label": "A"})}
	assert.True(t, s.IsSelected(domain.Record(map[string]string{"label": "A"})))
	assert.False(t, s.IsSelected(domain.Text("A")))
}
