package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Widgets, 4)

	assert.True(t, cfg.Widgets[0].Async)
	assert.True(t, cfg.Widgets[0].Multiple)
	assert.False(t, cfg.Widgets[3].Async)
	assert.False(t, cfg.Widgets[3].Multiple)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	bus := &recordingBus{}
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceWithBus(bus, path)

	cfg := DefaultConfig()
	cfg.Widgets[2].Value = []string{"bee"}
	cfg.Widgets[1].AsyncWaitMS = 300
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 300*time.Millisecond, loaded.Widgets[1].AsyncWait())

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, bus.events[0])
	assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path, Widgets: 4}, bus.events[1])
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceWithBus(nil, filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathErrors(t *testing.T) {
	svc := NewConfigServiceWithBus(nil, "")
	dir := t.TempDir()

	_, err := svc.LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("widgets = ["), 0644))
	_, err = svc.LoadFromPath(broken)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestParseRecords(t *testing.T) {
	cfg, err := Parse([]byte(`
version = 1

[[widgets]]
label = "Fruit"
multiple = true
filter = "fuzzy"
value = ["Pear"]

[[widgets.records]]
label = "Apple"
color = "red"

[[widgets.records]]
label = "Pear"
color = "green"
`))
	require.NoError(t, err)
	require.Len(t, cfg.Widgets, 1)

	w := cfg.Widgets[0]
	assert.Equal(t, domain.WidgetID("widget-1"), w.WidgetID(0))
	assert.Equal(t, "fuzzy", w.Filter)

	options, err := w.Options()
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.True(t, options[0].IsRecord())

	value, err := w.InitialValue(options)
	require.NoError(t, err)
	require.Len(t, value, 1)
	assert.True(t, value[0].Equal(options[1]))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		widget WidgetConfig
		errMsg string
	}{
		{
			name:   "mixed options",
			widget: WidgetConfig{Choices: []string{"a"}, Records: []map[string]string{{"label": "b"}}},
			errMsg: "cannot be mixed",
		},
		{
			name:   "negative wait",
			widget: WidgetConfig{AsyncWaitMS: -1},
			errMsg: "negative async_wait_ms",
		},
		{
			name:   "negative rows",
			widget: WidgetConfig{MaxRows: -2},
			errMsg: "negative max_rows",
		},
		{
			name:   "unknown value",
			widget: WidgetConfig{Choices: []string{"a"}, Value: []string{"z"}},
			errMsg: `value "z" is not one of the options`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Widgets: []WidgetConfig{tt.widget}}
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Contains(t, err.Error(), "widget-1")
		})
	}

	assert.Error(t, (&Config{}).Validate())

	dup := &Config{Widgets: []WidgetConfig{{ID: "x"}, {ID: "x"}}}
	assert.ErrorContains(t, dup.Validate(), `share the id "x"`)
}

func TestInitialValueUnset(t *testing.T) {
	w := WidgetConfig{Choices: []string{"a"}}
	options, err := w.Options()
	require.NoError(t, err)

	value, err := w.InitialValue(options)
	require.NoError(t, err)
	assert.Nil(t, value, "nil means the value was not supplied")

	w.Value = []string{}
	value, err = w.InitialValue(options)
	require.NoError(t, err)
	assert.NotNil(t, value)
	assert.Empty(t, value)
}
