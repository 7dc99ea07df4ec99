package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the widget and the demo app
type KeyMap struct {
	// Widget keys, active while an input is focused
	Down    key.Binding
	Up      key.Binding
	Commit  key.Binding
	Dismiss key.Binding

	// App keys
	NextWidget key.Binding
	PrevWidget key.Binding
	Focus      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}
