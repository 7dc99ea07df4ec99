package input

import (
	"github.com/charmbracelet/bubbles/key"

	"typeahead/internal/ui/input/types"
)

// KeyMap holds every key binding of the widget and the demo app
type KeyMap = types.KeyMap

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next option"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "previous option"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextWidget: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevWidget: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Focus: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter/i", "edit field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// EditHelp is the footer help while typing
type EditHelp struct{ KeyMap }

func (k EditHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Commit, k.Dismiss, k.NextWidget}
}

func (k EditHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Commit, k.Dismiss},
		{k.NextWidget, k.PrevWidget, k.ForceQuit},
	}
}

// NormalHelp is the footer help with no input focused
type NormalHelp struct{ KeyMap }

func (k NormalHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.NextWidget, k.Help, k.Quit}
}

func (k NormalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.NextWidget, k.PrevWidget},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
