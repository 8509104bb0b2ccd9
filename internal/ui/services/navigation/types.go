package navigation

// State holds all navigation-related state
type State struct {
	Cursor         int // row within the current page
	ViewportOffset int
	ViewportHeight int
	MaxIndex       int // last row index, -1 when the page is empty
	Column         int // focused visible column
	MaxColumn      int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// reserved rows: tabs, header, separator, pager bar, status, help
const chromeHeight = 8
