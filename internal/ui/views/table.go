package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"dispatchdash/internal/domain"
	uilogic "dispatchdash/internal/ui/logic"
	"dispatchdash/internal/ui/viewmodels"
)

// Screen geometry shared by the renderer and mouse hit testing
const (
	LeftMargin = 1
	HeaderRow  = 2 // tabs, blank line, then the header
	BodyRow    = HeaderRow + 2
	cellGap    = 1
)

// HeaderSpan is the screen range [Start, End) of one header cell
type HeaderSpan struct {
	ID    string
	Start int
	End   int
}

// CellWidth is the rendered width of a column, wide enough for its label
// plus a sort arrow
func CellWidth(c domain.Column) int {
	return max(c.Width, ansi.StringWidth(c.Label)+2)
}

// HeaderSpans lays out the header cells from the left margin
func HeaderSpans(cols []domain.Column) []HeaderSpan {
	spans := make([]HeaderSpan, 0, len(cols))
	x := LeftMargin
	for _, c := range cols {
		w := CellWidth(c)
		spans = append(spans, HeaderSpan{ID: c.ID, Start: x, End: x + w})
		x += w + cellGap
	}
	return spans
}

// HitHeader returns the header cell under screen position (x, y). The gap
// after a cell belongs to it. rightHalf reports whether x lies in the
// right half of the cell.
func HitHeader(spans []HeaderSpan, x, y int) (id string, rightHalf bool, ok bool) {
	if y != HeaderRow {
		return "", false, false
	}
	for _, s := range spans {
		if x >= s.Start && x < s.End+cellGap {
			return s.ID, 2*(x-s.Start) >= s.End-s.Start, true
		}
	}
	return "", false, false
}

// TableRenderer renders the header and body of a table view
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// RenderHeader renders the header row and the separator below it
func (tr *TableRenderer) RenderHeader(tv viewmodels.TableView, focused int) string {
	cells := make([]string, len(tv.Columns))
	widths := 0
	for i, c := range tv.Columns {
		label := c.Label
		if c.ID == tv.SortColumn {
			if tv.SortDescending {
				label += " ▼"
			} else {
				label += " ▲"
			}
		}
		text := fitCell(label, CellWidth(c))

		style := tr.styles.Header
		switch {
		case tv.Dragged != "" && c.ID == tv.Dragged:
			style = tr.styles.DragHeader
		case tv.Dragged != "" && c.ID == tv.DropTarget:
			style = tr.styles.DropTarget
		case i == focused:
			style = tr.styles.FocusHeader
		}
		cells[i] = style.Render(text)
		widths += CellWidth(c) + cellGap
	}

	header := strings.Join(cells, strings.Repeat(" ", cellGap))
	sep := tr.styles.Separator.Render(strings.Repeat("─", max(widths-cellGap, 0)))
	return header + "\n" + sep
}

// RenderBody renders the rows of the current page inside the viewport,
// padded to the viewport height so the pager bar does not move
func (tr *TableRenderer) RenderBody(tv viewmodels.TableView, cur viewmodels.Cursor) string {
	height := max(cur.ViewportHeight, 1)
	lines := make([]string, 0, height)

	if len(tv.Rows) == 0 {
		msg := "No records"
		if tv.Query != "" {
			msg = "No records match \"" + tv.Query + "\""
		}
		lines = append(lines, tr.styles.Dim.Render(msg))
	}

	end := min(cur.ViewportOffset+height, len(tv.Rows))
	for i := cur.ViewportOffset; i < end; i++ {
		lines = append(lines, tr.renderRow(tv, tv.Rows[i], i == cur.Row, cur.Column))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (tr *TableRenderer) renderRow(tv viewmodels.TableView, rec domain.Record, selected bool, focusedCol int) string {
	cells := make([]string, len(tv.Columns))
	for i, c := range tv.Columns {
		text := fitCell(rec.Cell(c.ID), CellWidth(c))

		style := lipgloss.NewStyle()
		if c.ID == "status" {
			style = style.Foreground(lipgloss.Color(StatusColor(rec.StatusText())))
		}
		if selected {
			style = style.Inherit(tr.styles.SelectionBg)
			if i == focusedCol {
				style = style.Inherit(tr.styles.FocusCell)
			}
		}
		cells[i] = tr.highlight(text, tv.Query, style)
	}

	gap := strings.Repeat(" ", cellGap)
	if selected {
		gap = tr.styles.SelectionBg.Render(gap)
	}
	return strings.Join(cells, gap)
}

// highlight renders text with the first match of query emphasized
func (tr *TableRenderer) highlight(text, query string, base lipgloss.Style) string {
	start, end, ok := uilogic.HighlightRange(text, query)
	if !ok {
		return base.Render(text)
	}
	return base.Render(text[:start]) +
		tr.styles.Highlight.Inherit(base).Render(text[start:end]) +
		base.Render(text[end:])
}

// fitCell truncates s to width w with an ellipsis and pads it to exactly w
func fitCell(s string, w int) string {
	t := ansi.Truncate(s, w, "…")
	if pad := w - ansi.StringWidth(t); pad > 0 {
		t += strings.Repeat(" ", pad)
	}
	return t
}
