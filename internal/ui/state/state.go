package state

import "dispatchdash/internal/domain"

// AppState contains the UI state that is not owned by a table service
type AppState struct {
	Tables      []domain.TableID
	ActiveTable int

	// UI state
	StatusMessage string
	PickerIndex   int            // highlighted row of the open picker popup
	MouseDragging bool           // a header drag started with the mouse is in progress
	DragTable     domain.TableID // table the mouse drag started on
	InPager       bool           // rendering is paused while the help pager runs
}

// NewAppState creates a new application state
func NewAppState(tables []domain.TableID) *AppState {
	return &AppState{Tables: tables}
}

// Active returns the id of the active table
func (s *AppState) Active() domain.TableID {
	if len(s.Tables) == 0 {
		return ""
	}
	return s.Tables[s.ActiveTable]
}

// SwitchTable moves the active tab by delta, wrapping around
func (s *AppState) SwitchTable(delta int) {
	n := len(s.Tables)
	if n == 0 {
		return
	}
	s.ActiveTable = ((s.ActiveTable+delta)%n + n) % n
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
}
