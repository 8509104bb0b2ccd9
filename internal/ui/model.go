package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
	"dispatchdash/internal/ui/coordinator"
	"dispatchdash/internal/ui/handlers"
	"dispatchdash/internal/ui/input"
	inputtypes "dispatchdash/internal/ui/input/types"
	"dispatchdash/internal/ui/services/navigation"
	"dispatchdash/internal/ui/state"
	"dispatchdash/internal/ui/viewmodels"
	"dispatchdash/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width       int
	height      int
	inPagerMode bool
	statusSeq   int

	tables       []*coordinator.Coordinator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	logger       zerolog.Logger

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model with one tab per coordinator
func NewModel(bus eventbus.EventBus, cfg *config.Config, tables []*coordinator.Coordinator) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ids := make([]domain.TableID, len(tables))
	for i, c := range tables {
		ids[i] = c.Table()
	}
	appState := state.NewAppState(ids)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		tables:       tables,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(cfg.Table.MinSearchLength, cfg.Table.Debounce()),
		logger:       config.ComponentLogger("ui"),
	}
	m.viewModel = viewmodels.NewViewModel(appState, textinput.New())
	m.eventHandler = handlers.NewEventHandler(m.table)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("dispatchdash")
}

// Close unmounts every table, cancelling pending search dispatches
func (m *Model) Close() {
	for _, c := range m.tables {
		c.Close()
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, c := range m.tables {
			c.Navigation.SetViewportHeight(msg.Height)
			c.Navigation.Clamp()
		}
		return m, nil

	case tea.KeyMsg:
		// Keys can switch tables or modes, which a mouse drag cannot survive
		m.endMouseDrag()

		c := m.active()
		if c == nil {
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, &input.ModelContext{Table: c})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	c := m.active()
	if c == nil {
		return "No tables configured"
	}

	m.viewModel.SetDimensions(m.width, m.height)

	var mode viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		mode = viewmodels.InputModeSearch
	case inputtypes.ModeColumns:
		mode = viewmodels.InputModeColumns
	case inputtypes.ModeReorder:
		mode = viewmodels.InputModeReorder
	case inputtypes.ModePageSize:
		mode = viewmodels.InputModePageSize
	default:
		mode = viewmodels.InputModeNormal
	}
	m.viewModel.SetInputMode(mode)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetPopup(m.buildPopup(c))

	return m.renderer.Render(m.viewModel.BuildScreen(c))
}

func (m *Model) active() *coordinator.Coordinator {
	if len(m.tables) == 0 {
		return nil
	}
	return m.tables[m.state.ActiveTable]
}

func (m *Model) table(id domain.TableID) *coordinator.Coordinator {
	for _, c := range m.tables {
		if c.Table() == id {
			return c
		}
	}
	return nil
}

// buildPopup returns the picker for the current mode, if any
func (m *Model) buildPopup(c *coordinator.Coordinator) *viewmodels.Popup {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModePageSize:
		p := &viewmodels.Popup{
			Title: "Rows per page",
			Index: m.state.PickerIndex,
			Hint:  "↑/↓ choose · enter apply · esc cancel",
		}
		for _, size := range c.Pagination.PageSizeOptions() {
			label := fmt.Sprintf("%3d", size)
			if size == c.Pagination.PageSize() {
				label += "  (current)"
			}
			p.Items = append(p.Items, viewmodels.PopupItem{Label: label})
		}
		return p

	case inputtypes.ModeColumns:
		labels := make(map[string]string)
		for _, d := range c.Descriptors() {
			labels[d.ID] = d.Label
		}
		p := &viewmodels.Popup{
			Title: c.Table().Title() + " columns",
			Index: m.state.PickerIndex,
			Hint:  "space toggle · a show all · esc close",
		}
		for _, id := range c.Columns.Order() {
			p.Items = append(p.Items, viewmodels.PopupItem{
				Label:     labels[id],
				Checkable: true,
				Checked:   c.Visibility.IsVisible(id),
			})
		}
		return p
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug().Str("action", action.Type()).Msg("processAction")
	c := m.active()

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		c.Navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.PageAction:
		switch a.Target {
		case "prev":
			c.PrevPage()
		case "next":
			c.NextPage()
		case "first":
			c.FirstPage()
		case "last":
			c.LastPage()
		}

	case inputtypes.SetPageSizeAction:
		c.SetPageSize(a.Size)
		return m.setStatus(fmt.Sprintf("%d rows per page", c.Pagination.PageSize()))

	case inputtypes.SwitchTableAction:
		m.state.SwitchTable(a.Delta)

	case inputtypes.UpdatePickerIndexAction:
		m.state.PickerIndex = a.Index

	case inputtypes.UpdateTextAction:
		c.Search.OnInput(a.Text)

	case inputtypes.SubmitTextAction:
		m.logger.Debug().Str("query", a.Text).Msg("search box closed")

	case inputtypes.CancelTextAction, inputtypes.ClearSearchAction:
		c.Search.OnInput("")

	case inputtypes.ToggleColumnAction:
		c.ToggleColumn(a.ID)

	case inputtypes.ShowAllColumnsAction:
		c.ShowAllColumns()

	case inputtypes.DragStartAction:
		c.Columns.DragStart(a.ID)

	case inputtypes.DragOverAction:
		c.Columns.DragOver(a.Target)

	case inputtypes.DropAction:
		dragged, _ := c.Columns.Dragging()
		c.CommitDrop(a.Target)
		return m.setStatus(fmt.Sprintf("Moved column %s", dragged))

	case inputtypes.DragEndAction:
		c.Columns.DragEnd()

	case inputtypes.SortByAction:
		c.SortBy(a.Column)
		return m.setStatus("Sorted by " + c.Sorting.ModeString())

	case inputtypes.ClearSortAction:
		c.ClearSort()
		return m.setStatus("Sort cleared")

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}

	return nil
}

// handleMouse maps mouse gestures on the header onto the column drag
// state machine. Clicks on the pager bar change page; clicks on a row
// move the cursor.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionRelease && m.state.MouseDragging {
		return m.releaseMouseDrag(msg)
	}

	c := m.active()
	if c == nil || m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		return nil
	}

	tv := c.View()
	cur := c.Cursor()
	id, _, onHeader := views.HitHeader(views.HeaderSpans(tv.Columns), msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			c.Navigation.Navigate(navigation.DirectionUp)
		case tea.MouseButtonWheelDown:
			c.Navigation.Navigate(navigation.DirectionDown)
		case tea.MouseButtonLeft:
			m.endMouseDrag()
			if onHeader {
				c.Columns.DragStart(id)
				c.Columns.DragOver(id)
				c.Navigation.FocusColumn(tv.ColumnIndex(id))
				m.state.MouseDragging = true
				m.state.DragTable = c.Table()
				return nil
			}
			spans := views.PagerSpans(tv.Pagination, tv.Pages)
			if page, ok := views.HitPager(spans, views.PagerRow(cur.ViewportHeight), msg.X, msg.Y); ok {
				c.SetPage(page)
				return nil
			}
			if row := msg.Y - views.BodyRow; row >= 0 && row < cur.ViewportHeight {
				c.Navigation.MoveToIndex(cur.ViewportOffset + row)
			}
		}

	case tea.MouseActionMotion:
		if m.state.MouseDragging && m.state.DragTable == c.Table() && onHeader {
			c.Columns.DragOver(id)
		}
	}
	return nil
}

// releaseMouseDrag ends a mouse drag. The drop only lands when the
// release hits a header of the table the drag started on.
func (m *Model) releaseMouseDrag(msg tea.MouseMsg) tea.Cmd {
	c := m.table(m.state.DragTable)
	if c == nil || c != m.active() || m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		m.endMouseDrag()
		return nil
	}

	id, rightHalf, onHeader := views.HitHeader(views.HeaderSpans(c.View().Columns), msg.X, msg.Y)
	dragged, _ := c.Columns.Dragging()
	m.state.MouseDragging = false
	m.state.DragTable = ""
	if !onHeader {
		c.Columns.DragEnd()
		return nil
	}
	c.DropAt(id, rightHalf)
	if id != dragged {
		return m.setStatus(fmt.Sprintf("Moved column %s", dragged))
	}
	return nil
}

// endMouseDrag abandons a mouse drag on the table it started on
func (m *Model) endMouseDrag() {
	if !m.state.MouseDragging {
		return
	}
	if c := m.table(m.state.DragTable); c != nil {
		c.Columns.DragEnd()
	}
	m.state.MouseDragging = false
	m.state.DragTable = ""
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("help pager failed")
			return m, m.setStatus("Help unavailable: " + msg.err.Error())
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.state.InPager = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil
	}
	return m, nil
}

// handleEvent processes domain events delivered from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	if status := m.eventHandler.HandleEvent(event); status != "" {
		return m.setStatus(status)
	}
	return nil
}

// setStatus shows a status message and clears it after a while
func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.SetStatus(msg)
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		return m.setStatus("Help pager needs a terminal")
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}
