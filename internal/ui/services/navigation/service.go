package navigation

// Service tracks the row cursor, its scroll viewport and the focused
// column of one table view. Rows are indexed within the current page.
type Service struct {
	state    *State
	rowsFn   func() int // rows on the current page
	columnFn func() int // visible columns
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		state: &State{
			ViewportHeight: 20, // Default, will be updated
		},
	}
}

// SetRowCountFunction sets the function reporting rows on the current page
func (s *Service) SetRowCountFunction(fn func() int) {
	s.rowsFn = fn
}

// SetColumnCountFunction sets the function reporting visible columns
func (s *Service) SetColumnCountFunction(fn func() int) {
	s.columnFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetColumn returns the focused column position
func (s *Service) GetColumn() int {
	s.refresh()
	return s.state.Column
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height from the terminal height
func (s *Service) SetViewportHeight(height int) {
	s.state.ViewportHeight = max(height-chromeHeight, 1)
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refresh()

	switch direction {
	case DirectionUp:
		s.moveTo(s.state.Cursor - 1)
	case DirectionDown:
		s.moveTo(s.state.Cursor + 1)
	case DirectionPageUp:
		step := max(s.state.ViewportHeight-1, 1)
		s.state.ViewportOffset = max(s.state.ViewportOffset-step, 0)
		s.moveTo(s.state.Cursor - step)
	case DirectionPageDown:
		s.moveTo(s.state.Cursor + max(s.state.ViewportHeight-1, 1))
	case DirectionHome:
		s.state.Cursor = 0
		s.state.ViewportOffset = 0
	case DirectionEnd:
		s.moveTo(s.state.MaxIndex)
	case DirectionLeft:
		if s.state.Column > 0 {
			s.state.Column--
		}
	case DirectionRight:
		if s.state.Column < s.state.MaxColumn {
			s.state.Column++
		}
	}
}

// MoveToIndex moves cursor to specific row
func (s *Service) MoveToIndex(index int) {
	s.refresh()
	s.moveTo(index)
}

// FocusColumn focuses the column at position i
func (s *Service) FocusColumn(i int) {
	s.refresh()
	s.state.Column = min(max(i, 0), s.state.MaxColumn)
}

// Reset returns the cursor and viewport to the top of the page
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

// Clamp pulls the cursor and column back inside the current bounds
func (s *Service) Clamp() {
	s.refresh()
	s.moveTo(s.state.Cursor)
	s.state.Column = min(s.state.Column, s.state.MaxColumn)
}

func (s *Service) refresh() {
	if s.rowsFn != nil {
		s.state.MaxIndex = s.rowsFn() - 1
	}
	if s.columnFn != nil {
		s.state.MaxColumn = max(s.columnFn()-1, 0)
	}
}

func (s *Service) moveTo(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

func (s *Service) clampIndex(index int) int {
	if index > s.state.MaxIndex {
		index = s.state.MaxIndex
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
