package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dispatchdash/internal/ui/input/modes"
	"dispatchdash/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is rendered by the view

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeColumns] = modes.NewColumnsMode()
	h.modes[types.ModeReorder] = modes.NewReorderMode()
	h.modes[types.ModePageSize] = modes.NewPageSizeMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if c := h.switchMode(changeMode.Mode, ctx, &allActions); c != nil {
			cmd = c
		}
	}

	// Keys a text mode does not claim go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// switchMode runs the Exit and Enter hooks around a mode change. Text
// input is reset and focused before Enter so a mode can preload a value.
func (h *Handler) switchMode(mode types.Mode, ctx types.Context, out *[]types.Action) tea.Cmd {
	if cur := h.modes[h.currentMode]; cur != nil {
		*out = append(*out, cur.Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = mode

	var cmd tea.Cmd
	if h.isTextMode(mode) {
		h.textInput.Reset()
		h.textInput.Focus()
		cmd = textinput.Blink
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}

	if next := h.modes[mode]; next != nil {
		*out = append(*out, next.Enter(ctx)...)
	}
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the shared text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
