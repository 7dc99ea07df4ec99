package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/ui/input/modes"
	"typeahead/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        KeyMap
}

func New(keys KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeEdit] = modes.NewEditMode(keys)

	return h
}

// HandleKey turns a key into actions. In edit mode every key the mode does
// not claim comes back as a TextKeyAction for the focused text input.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		if h.currentMode == types.ModeEdit {
			return []types.Action{types.TextKeyAction{Msg: msg}}
		}
		return nil
	}

	return h.applyModeChanges(actions, ctx)
}

// SetMode switches mode from outside, e.g. after a widget blurs itself
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.applyModeChanges([]types.Action{types.ChangeModeAction{Mode: mode}}, ctx)
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) Keys() KeyMap {
	return h.keys
}

func (h *Handler) applyModeChanges(actions []types.Action, ctx types.Context) []types.Action {
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}

		if m := h.modes[h.currentMode]; m != nil {
			allActions = append(allActions, m.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if m := h.modes[h.currentMode]; m != nil {
			allActions = append(allActions, m.Enter(ctx)...)
		}
	}

	return allActions
}
