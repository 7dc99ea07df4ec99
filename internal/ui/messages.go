package ui

import (
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/coordinator"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// resultsMsg carries an async filter result into the event loop
type resultsMsg struct {
	results coordinator.ResultsReady
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// quitMsg signals that the application should quit
type quitMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
