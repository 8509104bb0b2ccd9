package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeColumns
	ModeReorder
	ModePageSize
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// FocusedColumn is the id under the column cursor, "" when nothing is shown
	FocusedColumn() string
	// VisibleColumns are the shown column ids in display order
	VisibleColumns() []string
	// AllColumns are every known column id in display order
	AllColumns() []string
	IsColumnVisible(id string) bool
	PageSize() int
	PageSizeOptions() []int
	// SearchText is the latest search input, settled or not
	SearchText() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
