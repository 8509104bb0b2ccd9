package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"dispatchdash/internal/ui/input/types"
)

// ColumnsMode toggles column visibility from a checklist of every known column
type ColumnsMode struct {
	index int
}

func NewColumnsMode() *ColumnsMode {
	return &ColumnsMode{}
}

func (m *ColumnsMode) Name() string {
	return "columns"
}

func (m *ColumnsMode) Enter(ctx types.Context) []types.Action {
	m.index = 0
	focused := ctx.FocusedColumn()
	for i, id := range ctx.AllColumns() {
		if id == focused {
			m.index = i
			break
		}
	}
	return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}
}

func (m *ColumnsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ColumnsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	all := ctx.AllColumns()

	switch msg.String() {
	case "esc", "q", "c", "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		m.index = wrap(m.index-1, len(all))
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true
	case "down", "j":
		m.index = wrap(m.index+1, len(all))
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true
	case " ", "x":
		if m.index < len(all) {
			return []types.Action{types.ToggleColumnAction{ID: all[m.index]}}, true
		}
	case "a":
		return []types.Action{types.ShowAllColumnsAction{}}, true
	}

	return nil, true
}
