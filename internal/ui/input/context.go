package input

import (
	"dispatchdash/internal/domain"
	"dispatchdash/internal/ui/coordinator"
)

// ModelContext implements the Context interface for the input handler
// over the coordinator of the active table
type ModelContext struct {
	Table *coordinator.Coordinator
}

func (c *ModelContext) FocusedColumn() string {
	col, ok := c.Table.FocusedColumn()
	if !ok {
		return ""
	}
	return col.ID
}

func (c *ModelContext) VisibleColumns() []string {
	return domain.ColumnIDs(c.Table.VisibleColumns())
}

func (c *ModelContext) AllColumns() []string {
	return c.Table.Columns.Order()
}

func (c *ModelContext) IsColumnVisible(id string) bool {
	return c.Table.Visibility.IsVisible(id)
}

func (c *ModelContext) PageSize() int {
	return c.Table.Pagination.PageSize()
}

func (c *ModelContext) PageSizeOptions() []int {
	return c.Table.Pagination.PageSizeOptions()
}

func (c *ModelContext) SearchText() string {
	return c.Table.Search.Query()
}
