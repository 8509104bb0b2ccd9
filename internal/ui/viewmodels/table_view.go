package viewmodels

import (
	"dispatchdash/internal/domain"
	"dispatchdash/internal/ui/services/pagination"
)

// TableInput is everything the table projection reads. Rows is the full
// filtered and sorted row set; the projection slices out the page.
type TableInput struct {
	Table      domain.TableID
	Columns    []domain.Column // known column descriptors
	Order      []string
	Visible    map[string]bool
	Rows       []domain.Record
	Pagination pagination.Meta

	Dragged        string
	DropTarget     string
	SortColumn     string
	SortDescending bool
	Query          string
}

// TableView is a render-ready projection of one table
type TableView struct {
	Table      domain.TableID
	Columns    []domain.Column // visible, in display order
	Rows       []domain.Record // current page only
	Pagination pagination.Meta
	Pages      []pagination.PageMarker

	Dragged        string
	DropTarget     string
	SortColumn     string
	SortDescending bool
	Query          string
}

// VisibleColumns returns the descriptors of visible ids in the given
// order. Ids without a descriptor are skipped.
func VisibleColumns(all []domain.Column, visible map[string]bool, order []string) []domain.Column {
	byID := make(map[string]domain.Column, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}

	out := make([]domain.Column, 0, len(order))
	for _, id := range order {
		c, ok := byID[id]
		if !ok || !visible[id] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// PageRows returns rows[start:end] with both bounds clamped to the slice
func PageRows(rows []domain.Record, start, end int) []domain.Record {
	start = min(max(start, 0), len(rows))
	end = min(max(end, start), len(rows))
	return rows[start:end]
}

// Project builds the table view. It has no side effects.
func Project(in TableInput) TableView {
	return TableView{
		Table:          in.Table,
		Columns:        VisibleColumns(in.Columns, in.Visible, in.Order),
		Rows:           PageRows(in.Rows, in.Pagination.StartIndex, in.Pagination.EndIndex),
		Pagination:     in.Pagination,
		Pages:          pagination.Sequence(in.Pagination.CurrentPage, in.Pagination.TotalPages),
		Dragged:        in.Dragged,
		DropTarget:     in.DropTarget,
		SortColumn:     in.SortColumn,
		SortDescending: in.SortDescending,
		Query:          in.Query,
	}
}

// ColumnIndex returns the display position of id, or -1
func (v TableView) ColumnIndex(id string) int {
	for i, c := range v.Columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}
