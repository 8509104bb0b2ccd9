package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dispatchdash/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	// Rows
	case "up", "k":
		return navigate("up"), true
	case "down", "j":
		return navigate("down"), true
	case "pgup", "ctrl+u":
		return navigate("pageup"), true
	case "pgdown", "ctrl+d":
		return navigate("pagedown"), true
	case "home":
		return navigate("home"), true
	case "end", "G":
		return navigate("end"), true
	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	// Column focus
	case "<", "shift+left", "H":
		return navigate("left"), true
	case ">", "shift+right", "L":
		return navigate("right"), true

	// Pages
	case "left", "h":
		return []types.Action{types.PageAction{Target: "prev"}}, true
	case "right", "l":
		return []types.Action{types.PageAction{Target: "next"}}, true
	case "[":
		return []types.Action{types.PageAction{Target: "first"}}, true
	case "]":
		return []types.Action{types.PageAction{Target: "last"}}, true
	case "p":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePageSize}}, true

	// Tables
	case "tab":
		return []types.Action{types.SwitchTableAction{Delta: 1}}, true
	case "shift+tab":
		return []types.Action{types.SwitchTableAction{Delta: -1}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "esc":
		if ctx.SearchText() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, true

	case "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeColumns}}, true
	case "m":
		if ctx.FocusedColumn() == "" {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeReorder}}, true

	case "s":
		if col := ctx.FocusedColumn(); col != "" {
			return []types.Action{types.SortByAction{Column: col}}, true
		}
		return nil, true
	case "S":
		return []types.Action{types.ClearSortAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
