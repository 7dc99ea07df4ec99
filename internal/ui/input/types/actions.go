package types

import tea "github.com/charmbracelet/bubbletea"

// Dropdown actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

type CommitAction struct{}

func (a CommitAction) Type() string { return "commit" }

type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

// TextKeyAction forwards a key to the focused widget's text input
type TextKeyAction struct {
	Msg tea.KeyMsg
}

func (a TextKeyAction) Type() string { return "text_key" }

// Focus actions
type CycleFocusAction struct {
	Delta int // +1 next widget, -1 previous widget
}

func (a CycleFocusAction) Type() string { return "cycle_focus" }

type FocusWidgetAction struct {
	Index int
}

func (a FocusWidgetAction) Type() string { return "focus_widget" }

type BlurWidgetAction struct{}

func (a BlurWidgetAction) Type() string { return "blur_widget" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Application actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
