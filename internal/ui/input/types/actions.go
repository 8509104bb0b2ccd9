package types

// Row and column cursor movement
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Page movement
type PageAction struct {
	Target string // "prev", "next", "first", "last"
}

func (a PageAction) Type() string { return "page" }

type SetPageSizeAction struct {
	Size int
}

func (a SetPageSizeAction) Type() string { return "set_page_size" }

type SwitchTableAction struct {
	Delta int
}

func (a SwitchTableAction) Type() string { return "switch_table" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Picker cursor for the page size and column popups
type UpdatePickerIndexAction struct {
	Index int
}

func (a UpdatePickerIndexAction) Type() string { return "update_picker_index" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// ClearSearchAction drops the applied search from normal mode
type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Column actions
type ToggleColumnAction struct {
	ID string
}

func (a ToggleColumnAction) Type() string { return "toggle_column" }

type ShowAllColumnsAction struct{}

func (a ShowAllColumnsAction) Type() string { return "show_all_columns" }

type DragStartAction struct {
	ID string
}

func (a DragStartAction) Type() string { return "drag_start" }

type DragOverAction struct {
	Target string
}

func (a DragOverAction) Type() string { return "drag_over" }

type DropAction struct {
	Target string
}

func (a DropAction) Type() string { return "drop" }

type DragEndAction struct{}

func (a DragEndAction) Type() string { return "drag_end" }

// Sort actions
type SortByAction struct {
	Column string
}

func (a SortByAction) Type() string { return "sort_by" }

type ClearSortAction struct{}

func (a ClearSortAction) Type() string { return "clear_sort" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
