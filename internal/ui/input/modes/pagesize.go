package modes

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"dispatchdash/internal/ui/input/types"
)

// PageSizeMode picks a page size from the allowed options. Moving the
// cursor only previews; enter applies.
type PageSizeMode struct {
	index int
}

func NewPageSizeMode() *PageSizeMode {
	return &PageSizeMode{}
}

func (m *PageSizeMode) Name() string {
	return "page-size"
}

func (m *PageSizeMode) Enter(ctx types.Context) []types.Action {
	m.index = 0
	for i, size := range ctx.PageSizeOptions() {
		if size == ctx.PageSize() {
			m.index = i
			break
		}
	}
	return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}
}

func (m *PageSizeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PageSizeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	options := ctx.PageSizeOptions()
	if len(options) == 0 {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	switch key := msg.String(); key {
	case "esc", "q", "p":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter", " ":
		return []types.Action{
			types.SetPageSizeAction{Size: options[m.index]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		m.index = wrap(m.index-1, len(options))
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true

	case "down", "j":
		m.index = wrap(m.index+1, len(options))
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true

	default:
		// 1..n picks an option directly
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(options) {
			m.index = n - 1
			return []types.Action{
				types.SetPageSizeAction{Size: options[m.index]},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
	}

	return nil, true
}

// GetCurrentIndex returns the highlighted option index
func (m *PageSizeMode) GetCurrentIndex() int {
	return m.index
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
