package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dispatchdash/internal/ui/input/types"
)

// SearchMode edits the table query. The handler feeds unclaimed keys to
// the shared text input and forwards every edit to the debouncer, so the
// mode itself only claims the keys that leave it.
type SearchMode struct {
	query *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{query: ti}
}

func (m *SearchMode) Name() string { return "search" }

// Enter preloads the latest query so reopening the box edits it in place
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.query != nil {
		m.query.SetValue(ctx.SearchText())
		m.query.CursorEnd()
	}
	return nil
}

func (m *SearchMode) Exit(types.Context) []types.Action {
	if m.query != nil {
		m.query.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, _ types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		// The query keeps settling on its own; enter only closes the box
		value := ""
		if m.query != nil {
			value = m.query.Value()
		}
		return []types.Action{
			types.SubmitTextAction{Text: value, Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}
