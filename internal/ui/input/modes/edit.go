package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/ui/input/types"
)

// EditMode handles keys while the focused widget's input has focus. Keys it
// does not claim go to the text input.
type EditMode struct {
	keys types.KeyMap
}

func NewEditMode(keys types.KeyMap) *EditMode {
	return &EditMode{keys: keys}
}

func (m *EditMode) Name() string {
	return "edit"
}

func (m *EditMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.BlurWidgetAction{}}
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Commit):
		return []types.Action{types.CommitAction{}}, true
	case key.Matches(msg, m.keys.Dismiss):
		return []types.Action{types.DismissAction{}}, true
	case key.Matches(msg, m.keys.NextWidget):
		return []types.Action{types.CycleFocusAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.PrevWidget):
		return []types.Action{types.CycleFocusAction{Delta: -1}}, true
	default:
		return nil, false
	}
}
