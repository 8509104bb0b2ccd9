package coordinator

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
	"dispatchdash/internal/logic"
	uilogic "dispatchdash/internal/ui/logic"
	"dispatchdash/internal/ui/services/columns"
	"dispatchdash/internal/ui/services/navigation"
	"dispatchdash/internal/ui/services/pagination"
	"dispatchdash/internal/ui/services/search"
	"dispatchdash/internal/ui/services/sorting"
	"dispatchdash/internal/ui/viewmodels"
)

// Options configure one table coordinator
type Options struct {
	Table    domain.TableID
	Store    logic.RecordStore
	Settings config.TableSettings
	Order    []string // initial column order; all known columns
	Visible  []string // initially visible columns
}

// Coordinator manages the services of one table view and their interactions
type Coordinator struct {
	// Services
	Pagination *pagination.Service
	Columns    *columns.Service
	Visibility *columns.Visibility
	Search     *search.Service
	Sorting    *sorting.Service
	Navigation *navigation.Service

	// Dependencies
	table       domain.TableID
	bus         eventbus.EventBus
	store       logic.RecordStore
	descriptors []domain.Column
	filter      *uilogic.SearchFilter
	logger      zerolog.Logger

	// Derived rows: filtered by query, then sorted
	rows  []domain.Record
	query string
}

// New creates a coordinator with all services for one table
func New(bus eventbus.EventBus, opts Options) (*Coordinator, error) {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	descriptors := domain.ColumnsFor(opts.Table)
	if descriptors == nil {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownTable, opts.Table)
	}
	known := domain.ColumnIDs(descriptors)

	order := opts.Order
	if len(order) == 0 {
		order = known
	}
	for _, id := range order {
		if !slices.Contains(known, id) {
			return nil, fmt.Errorf("%w: %q", config.ErrUnknownColumn, id)
		}
	}

	pager, err := pagination.NewService(bus, opts.Table, opts.Settings.PageSize)
	if err != nil {
		return nil, err
	}
	cols, err := columns.NewService(bus, opts.Table, order)
	if err != nil {
		return nil, err
	}
	debouncer, err := search.NewService(bus, opts.Table, search.Settings{
		MinLength: opts.Settings.MinSearchLength,
		Debounce:  opts.Settings.Debounce(),
	})
	if err != nil {
		return nil, err
	}

	store := opts.Store
	if store == nil {
		store = logic.NewMemoryRecordStore()
	}

	c := &Coordinator{
		Pagination:  pager,
		Columns:     cols,
		Visibility:  columns.NewVisibility(bus, opts.Table, order, opts.Visible),
		Search:      debouncer,
		Sorting:     sorting.NewService(bus, opts.Table),
		Navigation:  navigation.NewService(),
		table:       opts.Table,
		bus:         bus,
		store:       store,
		descriptors: descriptors,
		filter:      uilogic.NewSearchFilter(known),
		logger:      config.ComponentLogger("coordinator").With().Str("table", string(opts.Table)).Logger(),
	}

	c.wireServices()
	c.Reload()

	return c, nil
}

// NewFromConfig creates a coordinator using the table settings and the
// column layout of cfg
func NewFromConfig(bus eventbus.EventBus, cfg *config.Config, table domain.TableID, store logic.RecordStore) (*Coordinator, error) {
	order, visible := cfg.LayoutFor(table)
	return New(bus, Options{
		Table:    table,
		Store:    store,
		Settings: cfg.Table,
		Order:    order,
		Visible:  visible,
	})
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	c.Navigation.SetRowCountFunction(func() int {
		start, end := c.Pagination.CurrentSlice()
		return len(viewmodels.PageRows(c.rows, start, end))
	})
	c.Navigation.SetColumnCountFunction(func() int {
		return len(c.VisibleColumns())
	})
}

// Table returns the table this coordinator serves
func (c *Coordinator) Table() domain.TableID {
	return c.table
}

// Query returns the search query currently applied to the rows
func (c *Coordinator) Query() string {
	return c.query
}

// Rows returns the filtered and sorted rows of every page
func (c *Coordinator) Rows() []domain.Record {
	return c.rows
}

// Descriptors returns every known column of the table
func (c *Coordinator) Descriptors() []domain.Column {
	return slices.Clone(c.descriptors)
}

// Reload re-reads the store and re-applies the current query and sort
func (c *Coordinator) Reload() {
	c.recompute()
	c.bus.Publish(domain.DataLoadedEvent{Table: c.table, Count: c.store.Len()})
}

// ApplySearch filters the rows by a settled query and returns to page 1
func (c *Coordinator) ApplySearch(query string) {
	c.query = query
	c.recompute()
	c.Pagination.Reset()
	c.Navigation.Reset()
	c.logger.Debug().Str("query", query).Int("matches", len(c.rows)).Msg("search applied")
}

// SortBy sorts by column, flipping direction on a repeat
func (c *Coordinator) SortBy(column string) {
	if !c.Columns.Has(column) {
		return
	}
	c.Sorting.SetColumn(column)
	c.recompute()
}

// ApplySort sets the sort column and direction explicitly
func (c *Coordinator) ApplySort(column string, descending bool) error {
	if column != "" && !c.Columns.Has(column) {
		return fmt.Errorf("%w: %q", config.ErrUnknownColumn, column)
	}
	c.Sorting.Apply(column, descending)
	c.recompute()
	return nil
}

// ClearSort returns to store order
func (c *Coordinator) ClearSort() {
	c.Sorting.Clear()
	c.recompute()
}

func (c *Coordinator) recompute() {
	rows := c.filter.Filter(c.store.All(), c.query)
	c.Sorting.Sort(rows)
	c.rows = rows
	c.Pagination.SetTotalItems(len(rows))
	c.Navigation.Clamp()
}

// Page changes. The row cursor returns to the top of the new page.

func (c *Coordinator) SetPage(page int) { c.pageChange(func() { c.Pagination.SetPage(page) }) }
func (c *Coordinator) NextPage()        { c.pageChange(c.Pagination.NextPage) }
func (c *Coordinator) PrevPage()        { c.pageChange(c.Pagination.PrevPage) }
func (c *Coordinator) FirstPage()       { c.pageChange(c.Pagination.FirstPage) }
func (c *Coordinator) LastPage()        { c.pageChange(c.Pagination.LastPage) }

// SetPageSize changes the page size, returning to page 1
func (c *Coordinator) SetPageSize(size int) {
	c.pageChange(func() { c.Pagination.SetPageSize(size) })
}

func (c *Coordinator) pageChange(fn func()) {
	page, size := c.Pagination.CurrentPage(), c.Pagination.PageSize()
	fn()
	if page != c.Pagination.CurrentPage() || size != c.Pagination.PageSize() {
		c.Navigation.Reset()
	}
}

// VisibleColumns returns the shown columns in display order
func (c *Coordinator) VisibleColumns() []domain.Column {
	return viewmodels.VisibleColumns(c.descriptors, c.Visibility.Set(), c.Columns.Order())
}

// FocusedColumn returns the column under the column cursor
func (c *Coordinator) FocusedColumn() (domain.Column, bool) {
	cols := c.VisibleColumns()
	i := c.Navigation.GetColumn()
	if i < 0 || i >= len(cols) {
		return domain.Column{}, false
	}
	return cols[i], true
}

// ToggleColumn shows or hides a column
func (c *Coordinator) ToggleColumn(id string) {
	c.Visibility.Toggle(id)
	c.Navigation.Clamp()
}

// ShowAllColumns makes every column visible
func (c *Coordinator) ShowAllColumns() {
	c.Visibility.ShowAll()
}

// CommitDrop ends a keyboard drag on target. A target to the right of the
// dragged column takes its place by dropping after it; a target to the
// left drops before it.
func (c *Coordinator) CommitDrop(target string) {
	dragged, ok := c.Columns.Dragging()
	if !ok {
		return
	}
	if c.Columns.IndexOf(target) > c.Columns.IndexOf(dragged) {
		c.Columns.DropAfter(target)
	} else {
		c.Columns.Drop(target)
	}
	c.focusColumn(dragged)
}

// DropAt ends a mouse drag on target. Releasing over the right half of a
// header cell drops after it.
func (c *Coordinator) DropAt(target string, rightHalf bool) {
	dragged, ok := c.Columns.Dragging()
	if !ok {
		return
	}
	if rightHalf {
		c.Columns.DropAfter(target)
	} else {
		c.Columns.Drop(target)
	}
	c.focusColumn(dragged)
}

func (c *Coordinator) focusColumn(id string) {
	for i, col := range c.VisibleColumns() {
		if col.ID == id {
			c.Navigation.FocusColumn(i)
			return
		}
	}
}

// View returns the render-ready projection of the table
func (c *Coordinator) View() viewmodels.TableView {
	dragged, _ := c.Columns.Dragging()
	return viewmodels.Project(viewmodels.TableInput{
		Table:          c.table,
		Columns:        c.descriptors,
		Order:          c.Columns.Order(),
		Visible:        c.Visibility.Set(),
		Rows:           c.rows,
		Pagination:     c.Pagination.Meta(),
		Dragged:        dragged,
		DropTarget:     c.Columns.DropTarget(),
		SortColumn:     c.Sorting.Column(),
		SortDescending: c.Sorting.Descending(),
		Query:          c.query,
	})
}

// Cursor returns the row and column focus for rendering
func (c *Coordinator) Cursor() viewmodels.Cursor {
	return viewmodels.Cursor{
		Row:            c.Navigation.GetCursor(),
		Column:         c.Navigation.GetColumn(),
		ViewportOffset: c.Navigation.GetViewportOffset(),
		ViewportHeight: c.Navigation.GetViewportHeight(),
	}
}

// SearchPending reports whether a typed query is waiting out the debounce
func (c *Coordinator) SearchPending() bool {
	return c.Search.Pending()
}

// SelectedRecord returns the row under the cursor on the current page
func (c *Coordinator) SelectedRecord() (domain.Record, bool) {
	start, end := c.Pagination.CurrentSlice()
	page := viewmodels.PageRows(c.rows, start, end)
	i := c.Navigation.GetCursor()
	if i < 0 || i >= len(page) {
		return nil, false
	}
	return page[i], true
}

// Close unmounts the table view. Pending search dispatches are cancelled.
func (c *Coordinator) Close() {
	c.Search.Close()
	c.Columns.DragEnd()
}
