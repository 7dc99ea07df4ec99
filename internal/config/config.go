package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// Config represents the demo page configuration
type Config struct {
	Version int            `toml:"version"`
	Title   string         `toml:"title,omitempty"`
	Widgets []WidgetConfig `toml:"widgets"`
}

// WidgetConfig describes one typeahead field. Options come from either
// Choices (plain strings) or Records (tables with an optional label key).
type WidgetConfig struct {
	ID          string              `toml:"id,omitempty"`
	Label       string              `toml:"label,omitempty"`
	Placeholder string              `toml:"placeholder,omitempty"`
	Description string              `toml:"description,omitempty"`
	Multiple    bool                `toml:"multiple,omitempty"`
	Async       bool                `toml:"async,omitempty"`
	AsyncWaitMS int                 `toml:"async_wait_ms,omitempty"`
	Loading     bool                `toml:"loading,omitempty"`
	Disabled    bool                `toml:"disabled,omitempty"`
	Filter      string              `toml:"filter,omitempty"`
	MaxRows     int                 `toml:"max_rows,omitempty"`
	Choices     []string            `toml:"choices,omitempty"`
	Records     []map[string]string `toml:"records,omitempty"`
	Value       []string            `toml:"value,omitempty"` // labels of the initially selected options
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the location of the user configuration file
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "typeahead", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// Load loads the configuration from the service's file. A missing file
// yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Widgets: len(cfg.Widgets)})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads and validates configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: path, Widgets: len(cfg.Widgets)})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	cs.publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// Parse decodes and validates a TOML document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every widget definition
func (c *Config) Validate() error {
	if len(c.Widgets) == 0 {
		return errors.New("no widgets configured")
	}

	seen := make(map[domain.WidgetID]int, len(c.Widgets))
	for i, w := range c.Widgets {
		id := w.WidgetID(i)
		if prev, ok := seen[id]; ok {
			return errors.Newf("widgets %d and %d share the id %q", prev, i, id)
		}
		seen[id] = i

		if err := w.Validate(); err != nil {
			return errors.Wrapf(err, "widget %q", id)
		}
	}
	return nil
}

// Validate checks the widget definition on its own
func (w WidgetConfig) Validate() error {
	if w.AsyncWaitMS < 0 {
		return errors.Newf("negative async_wait_ms %d", w.AsyncWaitMS)
	}
	if w.MaxRows < 0 {
		return errors.Newf("negative max_rows %d", w.MaxRows)
	}
	options, err := w.Options()
	if err != nil {
		return err
	}
	_, err = w.InitialValue(options)
	return err
}

// WidgetID returns the configured id or one derived from the position
func (w WidgetConfig) WidgetID(index int) domain.WidgetID {
	if w.ID != "" {
		return domain.WidgetID(w.ID)
	}
	return domain.WidgetID(fmt.Sprintf("widget-%d", index+1))
}

// AsyncWait returns the debounce wait, zero meaning the default
func (w WidgetConfig) AsyncWait() time.Duration {
	return time.Duration(w.AsyncWaitMS) * time.Millisecond
}

// Options builds the option list. Choices and records cannot be mixed.
func (w WidgetConfig) Options() ([]domain.Option, error) {
	if len(w.Choices) > 0 && len(w.Records) > 0 {
		return nil, errors.New("choices and records cannot be mixed")
	}

	if len(w.Records) > 0 {
		options := make([]domain.Option, 0, len(w.Records))
		for _, r := range w.Records {
			options = append(options, domain.Record(r))
		}
		return options, nil
	}
	return domain.Texts(w.Choices...), nil
}

// InitialValue resolves Value against options by label. It returns nil when
// no value is configured.
func (w WidgetConfig) InitialValue(options []domain.Option) ([]domain.Option, error) {
	if w.Value == nil {
		return nil, nil
	}

	value := make([]domain.Option, 0, len(w.Value))
	for _, label := range w.Value {
		found := false
		for _, o := range options {
			if l, ok := o.Label(); ok && l == label {
				value = append(value, o)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Newf("value %q is not one of the options", label)
		}
	}
	return value, nil
}

// DefaultConfig returns the default demo page: asynchronous and synchronous
// widgets in multiple and single mode
func DefaultConfig() *Config {
	records := []map[string]string{
		{"label": "Apple", "color": "red", "size": "small"},
		{"label": "Bee", "color": "blue", "size": "small"},
		{"label": "Pie", "color": "brown", "size": "small"},
		{"label": "Pear", "color": "green", "size": "large"},
		{"label": "Banana", "color": "Yellow", "size": "medium"},
	}
	choices := []string{"apple", "bee", "pie", "pear"}

	return &Config{
		Version: 1,
		Title:   "Typeahead",
		Widgets: []WidgetConfig{
			{
				ID:          "async-multiple",
				Label:       "Async Search",
				Placeholder: "Type to begin searching",
				Description: "This is an Async search with multiple select",
				Multiple:    true,
				Async:       true,
				Records:     records,
			},
			{
				ID:          "async-single",
				Label:       "Async Search",
				Placeholder: "Type to begin searching",
				Description: "This is an Async search with single select",
				Async:       true,
				Records:     records,
			},
			{
				ID:          "sync-multiple",
				Label:       "Sync Search",
				Placeholder: "Type to begin searching",
				Description: "This is a sync search with multiple select",
				Multiple:    true,
				Choices:     choices,
			},
			{
				ID:          "sync-single",
				Label:       "Sync Search",
				Placeholder: "Type to begin searching",
				Description: "This is a sync search with single select",
				Choices:     choices,
			},
		},
	}
}
