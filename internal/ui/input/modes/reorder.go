package modes

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"dispatchdash/internal/ui/input/types"
)

// ReorderMode drives the column drag gesture from the keyboard. Entering
// picks up the focused column; the arrows move the drop target.
type ReorderMode struct {
	dragged string
	target  int
}

func NewReorderMode() *ReorderMode {
	return &ReorderMode{}
}

func (m *ReorderMode) Name() string {
	return "reorder"
}

func (m *ReorderMode) Enter(ctx types.Context) []types.Action {
	m.dragged = ctx.FocusedColumn()
	m.target = slices.Index(ctx.VisibleColumns(), m.dragged)
	if m.dragged == "" || m.target < 0 {
		return nil
	}
	return []types.Action{
		types.DragStartAction{ID: m.dragged},
		types.DragOverAction{Target: m.dragged},
	}
}

func (m *ReorderMode) Exit(ctx types.Context) []types.Action {
	m.dragged = ""
	return nil
}

func (m *ReorderMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	cols := ctx.VisibleColumns()
	if m.dragged == "" || len(cols) == 0 {
		return []types.Action{types.DragEndAction{}, types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	m.target = min(max(m.target, 0), len(cols)-1)

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.DragEndAction{}, types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{types.DragEndAction{}, types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "enter", "m", " ":
		return []types.Action{
			types.DropAction{Target: cols[m.target]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "left", "h", "<":
		if m.target > 0 {
			m.target--
		}
		return []types.Action{types.DragOverAction{Target: cols[m.target]}}, true
	case "right", "l", ">":
		if m.target < len(cols)-1 {
			m.target++
		}
		return []types.Action{types.DragOverAction{Target: cols[m.target]}}, true
	case "home", "[":
		m.target = 0
		return []types.Action{types.DragOverAction{Target: cols[m.target]}}, true
	case "end", "]":
		m.target = len(cols) - 1
		return []types.Action{types.DragOverAction{Target: cols[m.target]}}, true
	}

	return nil, true
}
