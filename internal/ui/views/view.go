package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"dispatchdash/internal/ui/viewmodels"
)

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tableRender *TableRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		tableRender: NewTableRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(s viewmodels.Screen) string {
	width := s.Width
	if width <= 0 {
		width = 80
	}

	var lines []string
	lines = append(lines, r.renderTitleLine(s, width-2*LeftMargin))
	lines = append(lines, "")
	lines = append(lines, r.tableRender.RenderHeader(s.Table, s.Cursor.Column))
	lines = append(lines, r.tableRender.RenderBody(s.Table, s.Cursor))
	lines = append(lines, "")
	lines = append(lines, r.RenderPager(s.Table.Pagination, s.Table.Pages))

	switch {
	case s.InputText != "":
		lines = append(lines, s.InputText)
	case s.StatusMessage != "":
		lines = append(lines, r.styles.Status.Render(s.StatusMessage))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, s.Help.View(KeyMapFor(s.InputMode)))

	content := strings.Join(lines, "\n")

	// Clip long lines instead of letting the terminal wrap them
	rows := strings.Split(content, "\n")
	for i, row := range rows {
		rows[i] = ansi.Truncate(row, width-2*LeftMargin, "")
	}
	content = r.styles.Main.Render(strings.Join(rows, "\n"))
	if s.Height > 0 {
		content = lipgloss.NewStyle().MaxHeight(s.Height).Render(content)
	}

	if s.Popup != nil {
		return r.popupRender.RenderPopupOverlay(content, r.popupRender.RenderPicker(*s.Popup), width, s.Height)
	}
	return content
}

// renderTitleLine renders the logo and tabs on the left and the query and
// sort indicators on the right
func (r *Renderer) renderTitleLine(s viewmodels.Screen, width int) string {
	tabs := make([]string, len(s.Tabs))
	for i, t := range s.Tabs {
		if i == s.Active {
			tabs[i] = r.styles.ActiveTab.Render(t.Title())
		} else {
			tabs[i] = r.styles.Tab.Render(t.Title())
		}
	}
	left := r.styles.Title.Render("dispatchdash") + "  " + strings.Join(tabs, " ")

	var indicators []string
	if s.SearchPending {
		indicators = append(indicators, r.styles.Dim.Render("searching…"))
	}
	if s.Table.Query != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", s.Table.Query)))
	}
	if s.Table.SortColumn != "" {
		dir := "asc"
		if s.Table.SortDescending {
			dir = "desc"
		}
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("sort %s %s", s.Table.SortColumn, dir)))
	}
	if len(indicators) == 0 {
		return left
	}

	right := strings.Join(indicators, "  ")
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}
