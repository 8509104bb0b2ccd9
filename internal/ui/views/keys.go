package views

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings shown in the footer for one input mode
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return k.full }

func binding(keys, helpKey, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(helpKey, desc))
}

var (
	keyRows     = binding("j", "↑/↓", "rows")
	keyPages    = binding("l", "←/→", "page")
	keyEnds     = binding("]", "[/]", "first/last")
	keyFocus    = binding(">", "</>", "column")
	keyTab      = binding("tab", "tab", "table")
	keySearch   = binding("/", "/", "search")
	keyPageSize = binding("p", "p", "page size")
	keyColumns  = binding("c", "c", "columns")
	keyMove     = binding("m", "m", "move column")
	keySort     = binding("s", "s/S", "sort/clear")
	keyHelp     = binding("?", "?", "help")
	keyQuit     = binding("q", "q", "quit")

	keyPick    = binding("j", "↑/↓", "choose")
	keyApply   = binding("enter", "enter", "apply")
	keyToggle  = binding(" ", "space", "toggle")
	keyShowAll = binding("a", "a", "show all")
	keyTarget  = binding("l", "←/→", "position")
	keyDrop    = binding("enter", "enter", "drop")
	keyCancel  = binding("esc", "esc", "cancel")
	keyKeep    = binding("enter", "enter", "keep")
	keyClear   = binding("esc", "esc", "clear")
)

// KeyMapFor returns the footer bindings of an input mode
func KeyMapFor(mode string) help.KeyMap {
	switch mode {
	case "search":
		return keyMap{short: []key.Binding{keyKeep, keyClear}}
	case "page-size":
		return keyMap{short: []key.Binding{keyPick, keyApply, keyCancel}}
	case "columns":
		return keyMap{short: []key.Binding{keyPick, keyToggle, keyShowAll, keyCancel}}
	case "reorder":
		return keyMap{short: []key.Binding{keyTarget, keyDrop, keyCancel}}
	default:
		short := []key.Binding{keyRows, keyPages, keyFocus, keyTab, keySearch, keyPageSize, keyColumns, keyMove, keySort, keyHelp, keyQuit}
		return keyMap{
			short: short,
			full: [][]key.Binding{
				{keyRows, keyPages, keyEnds, keyFocus, keyTab},
				{keySearch, keyPageSize, keyColumns, keyMove, keySort},
				{keyHelp, keyQuit},
			},
		}
	}
}
