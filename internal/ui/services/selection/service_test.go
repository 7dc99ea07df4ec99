package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

type changes struct {
	values []domain.Value
}

func (c *changes) record(v domain.Value) { c.values = append(c.values, v) }

func TestSingleSelectReplaces(t *testing.T) {
	c := &changes{}
	s := NewService("w", eventbus.Nop{}, false, nil, c.record)
	assert.Empty(t, c.values, "no initial value, no change")
	assert.Equal(t, "", s.Prefix())

	done := s.ToggleOrSet(domain.Text("pear"))
	assert.True(t, done)
	done = s.ToggleOrSet(domain.Text("apple"))
	assert.True(t, done)

	require.Len(t, c.values, 2)
	got, ok := c.values[1].Single()
	require.True(t, ok)
	assert.Equal(t, "apple", got.String())
	assert.Equal(t, "apple | ", s.Prefix())
	assert.Equal(t, 1, s.Count())
}

func TestSingleRecommitDoesNotReportChange(t *testing.T) {
	c := &changes{}
	s := NewService("w", eventbus.Nop{}, false, nil, c.record)

	assert.True(t, s.ToggleOrSet(domain.Text("apple")))
	assert.True(t, s.ToggleOrSet(domain.Text("apple")), "a repeated commit still ends the interaction")
	require.Len(t, c.values, 1)

	record := domain.Record(map[string]string{"label": "Pear", "size": "M"})
	s.ToggleOrSet(record)
	s.ToggleOrSet(domain.Record(map[string]string{"label": "Pear", "size": "M"}))
	require.Len(t, c.values, 2, "equal records are the same value")
	assert.Equal(t, []string{"Pear"}, s.Value().Labels())
}

func TestMultiSelectToggles(t *testing.T) {
	c := &changes{}
	s := NewService("w", eventbus.Nop{}, true, nil, c.record)

	assert.False(t, s.ToggleOrSet(domain.Text("pear")))
	assert.False(t, s.ToggleOrSet(domain.Text("apple")))
	assert.Equal(t, "pear | apple | ", s.Prefix())
	assert.True(t, s.Contains(domain.Text("apple")))

	s.ToggleOrSet(domain.Text("pear"))
	assert.Equal(t, []string{"apple"}, s.Value().Labels())

	s.ToggleOrSet(domain.Text("apple"))
	assert.True(t, s.Value().Empty())
	assert.Equal(t, "", s.Prefix())

	require.Len(t, c.values, 4, "one change per commit, including the change to empty")
	assert.True(t, c.values[3].Multiple)
}

func TestRecordsCompareByValue(t *testing.T) {
	s := NewService("w", eventbus.Nop{}, true, nil, nil)
	a := domain.Record(map[string]string{"label": "Apple", "color": "red"})
	same := domain.Record(map[string]string{"label": "Apple", "color": "red"})

	s.ToggleOrSet(a)
	assert.True(t, s.Contains(same))
	s.ToggleOrSet(same)
	assert.Equal(t, 0, s.Count())
}

func TestPrefixWithUnlabeledRecords(t *testing.T) {
	unlabeled := domain.Record(map[string]string{"color": "red"})

	s := NewService("w", eventbus.Nop{}, true, []domain.Option{unlabeled}, nil)
	assert.Equal(t, "", s.Prefix(), "an empty joined text has no separator")

	s.ToggleOrSet(domain.Record(map[string]string{"label": "Pear"}))
	assert.Equal(t, " | Pear | ", s.Prefix())
}

func TestInitialValueReportedOnce(t *testing.T) {
	c := &changes{}
	initial := domain.Texts("a", "b")

	s := NewService("w", eventbus.Nop{}, false, initial, c.record)
	require.Len(t, c.values, 1)
	assert.Equal(t, []string{"a"}, c.values[0].Labels(), "single mode keeps the first entry")
	assert.Equal(t, "a | ", s.Prefix())

	c = &changes{}
	NewService("w", eventbus.Nop{}, true, []domain.Option{}, c.record)
	require.Len(t, c.values, 1, "an empty initial set is still a supplied value")
	assert.True(t, c.values[0].Empty())
}

func TestValueIsACopy(t *testing.T) {
	s := NewService("w", eventbus.Nop{}, true, domain.Texts("a"), nil)
	v := s.Value()
	v.Options[0] = domain.Text("changed")
	assert.Equal(t, []string{"a"}, s.Value().Labels())
}

func TestSelectionEventsPublished(t *testing.T) {
	bus := &recorder{}
	s := NewService("left", bus, true, nil, nil)
	s.ToggleOrSet(domain.Text("x"))

	require.Len(t, bus.events, 1)
	ev := bus.events[0].(eventbus.SelectionChangedEvent)
	assert.Equal(t, domain.WidgetID("left"), ev.Widget)
	assert.Equal(t, []string{"x"}, ev.Value.Labels())
}

type recorder struct {
	events []eventbus.DomainEvent
}

func (r *recorder) Publish(e eventbus.DomainEvent) { r.events = append(r.events, e) }
func (r *recorder) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
