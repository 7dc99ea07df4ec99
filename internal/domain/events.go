package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventInputChanged     EventType = "InputChanged"
	EventSearchScheduled  EventType = "SearchScheduled"
	EventResultsApplied   EventType = "ResultsApplied"
	EventOpenChanged      EventType = "OpenChanged"
	EventLoadingChanged   EventType = "LoadingChanged"
	EventHighlightMoved   EventType = "HighlightMoved"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WidgetID identifies one widget instance on a page
type WidgetID string

// SelectionChangedEvent is emitted after every selection change with the full value
type SelectionChangedEvent struct {
	Widget WidgetID
	Value  Value
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// InputChangedEvent is emitted when the free-typed search text changes
type InputChangedEvent struct {
	Widget WidgetID
	Text   string
}

func (e InputChangedEvent) Type() EventType { return EventInputChanged }

// SearchScheduledEvent is emitted when an asynchronous filter is (re)scheduled
type SearchScheduledEvent struct {
	Widget     WidgetID
	Generation uint64
	Query      string
}

func (e SearchScheduledEvent) Type() EventType { return EventSearchScheduled }

// ResultsAppliedEvent is emitted when a filtered list replaces the previous one
type ResultsAppliedEvent struct {
	Widget WidgetID
	Query  string
	Count  int
	Async  bool
}

func (e ResultsAppliedEvent) Type() EventType { return EventResultsApplied }

// OpenChangedEvent is emitted when the dropdown opens or closes
type OpenChangedEvent struct {
	Widget WidgetID
	Open   bool
}

func (e OpenChangedEvent) Type() EventType { return EventOpenChanged }

// LoadingChangedEvent is emitted when the loading indicator toggles
type LoadingChangedEvent struct {
	Widget  WidgetID
	Loading bool
}

func (e LoadingChangedEvent) Type() EventType { return EventLoadingChanged }

// HighlightMovedEvent is emitted when the highlighted row changes.
// NewIndex is -1 when nothing is highlighted.
type HighlightMovedEvent struct {
	Widget   WidgetID
	OldIndex int
	NewIndex int
}

func (e HighlightMovedEvent) Type() EventType { return EventHighlightMoved }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Widgets int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
