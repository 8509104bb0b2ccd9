package columns

import "errors"

// Construction errors
var (
	ErrEmptyColumnID   = errors.New("column id must not be empty")
	ErrDuplicateColumn = errors.New("duplicate column id")
)

// State holds the column order and the drag gesture in progress
type State struct {
	Order []string

	// Drag gesture. Dragged is "" when no gesture is active.
	Dragged    string
	DropTarget string
}
