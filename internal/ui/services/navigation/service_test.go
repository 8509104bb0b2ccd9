package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newNav(rows, cols, height int) (*Service, *int, *int) {
	s := NewService()
	r, c := rows, cols
	s.SetRowCountFunction(func() int { return r })
	s.SetColumnCountFunction(func() int { return c })
	s.SetViewportHeight(height + chromeHeight)
	return s, &r, &c
}

func TestNavigateRowsStaysInBounds(t *testing.T) {
	s, _, _ := newNav(5, 3, 10)

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.GetCursor())

	for i := 0; i < 10; i++ {
		s.Navigate(DirectionDown)
	}
	assert.Equal(t, 4, s.GetCursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.GetCursor())
	s.Navigate(DirectionEnd)
	assert.Equal(t, 4, s.GetCursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	s, _, _ := newNav(50, 3, 10)

	s.MoveToIndex(25)
	assert.Equal(t, 25, s.GetCursor())
	assert.Equal(t, 16, s.GetViewportOffset())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 16, s.GetCursor())
	assert.Equal(t, 7, s.GetViewportOffset())

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 25, s.GetCursor())
}

func TestEmptyPage(t *testing.T) {
	s, _, _ := newNav(0, 3, 10)

	s.Navigate(DirectionDown)
	s.Navigate(DirectionEnd)

	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())
}

func TestClampAfterPageShrinks(t *testing.T) {
	s, rows, cols := newNav(20, 5, 10)
	s.MoveToIndex(19)
	s.FocusColumn(4)

	*rows = 3
	*cols = 2
	s.Clamp()

	assert.Equal(t, 2, s.GetCursor())
	assert.Equal(t, 1, s.GetColumn())
}

func TestColumnFocus(t *testing.T) {
	s, _, _ := newNav(5, 3, 10)

	s.Navigate(DirectionLeft)
	assert.Equal(t, 0, s.GetColumn())
	s.Navigate(DirectionRight)
	s.Navigate(DirectionRight)
	s.Navigate(DirectionRight)
	assert.Equal(t, 2, s.GetColumn())

	s.FocusColumn(-4)
	assert.Equal(t, 0, s.GetColumn())
	s.FocusColumn(9)
	assert.Equal(t, 2, s.GetColumn())
}

func TestViewportHeightHasFloor(t *testing.T) {
	s := NewService()
	s.SetViewportHeight(3)
	assert.Equal(t, 1, s.GetViewportHeight())
}
