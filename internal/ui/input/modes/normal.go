package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/ui/input/types"
)

// NormalMode handles keys while no widget input is focused
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.BlurWidgetAction{}}
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.NextWidget), key.Matches(msg, m.keys.Down):
		return []types.Action{types.CycleFocusAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.PrevWidget), key.Matches(msg, m.keys.Up):
		return []types.Action{types.CycleFocusAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Focus):
		if ctx.WidgetCount() == 0 || ctx.WidgetDisabled(ctx.FocusedWidget()) {
			return nil, true
		}
		return []types.Action{
			types.FocusWidgetAction{Index: ctx.FocusedWidget()},
			types.ChangeModeAction{Mode: types.ModeEdit},
		}, true
	}
	return nil, true
}
