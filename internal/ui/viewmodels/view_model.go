package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"dispatchdash/internal/domain"
	"dispatchdash/internal/ui/state"
)

// Cursor is the row and column focus of a table view
type Cursor struct {
	Row            int // within the current page
	Column         int // position among visible columns
	ViewportOffset int
	ViewportHeight int
}

// TableSource is the active table as the view model sees it
type TableSource interface {
	View() TableView
	Cursor() Cursor
	SearchPending() bool
}

// PopupItem is one row of a picker popup
type PopupItem struct {
	Label     string
	Checkable bool
	Checked   bool
}

// Popup is a picker drawn over the table
type Popup struct {
	Title string
	Items []PopupItem
	Index int
	Hint  string
}

// Screen is everything the renderer draws for one frame
type Screen struct {
	Width  int
	Height int

	Tabs   []domain.TableID
	Active int

	Table         TableView
	Cursor        Cursor
	SearchPending bool

	StatusMessage string
	InputText     string
	InputMode     string
	Popup         *Popup
	Help          help.Model
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	width  int
	height int
	help   help.Model
	popup  *Popup
	prompt *PromptLine
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:  appState,
		help:   help.New(),
		prompt: NewPromptLine(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.prompt.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.prompt.SetQuery(textInput)
}

// SetPopup sets the picker to draw, nil for none
func (vm *ViewModel) SetPopup(p *Popup) {
	vm.popup = p
}

// BuildScreen creates a Screen for rendering
func (vm *ViewModel) BuildScreen(table TableSource) Screen {
	return Screen{
		Width:         vm.width,
		Height:        vm.height,
		Tabs:          vm.state.Tables,
		Active:        vm.state.ActiveTable,
		Table:         table.View(),
		Cursor:        table.Cursor(),
		SearchPending: table.SearchPending(),
		StatusMessage: vm.state.StatusMessage,
		InputText:     vm.prompt.Text(),
		InputMode:     vm.prompt.Mode().String(),
		Popup:         vm.popup,
		Help:          vm.help,
	}
}
