package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"dispatchdash/internal/ui/viewmodels"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPicker renders a picker popup box
func (pr *PopupRenderer) RenderPicker(p viewmodels.Popup) string {
	var b strings.Builder
	b.WriteString(pr.styles.PopupTitle.Render(p.Title))
	b.WriteString("\n")
	for i, item := range p.Items {
		cursor := "  "
		if i == p.Index {
			cursor = pr.styles.PopupCursor.Render("› ")
		}
		label := item.Label
		if item.Checkable {
			box := "[ ] "
			if item.Checked {
				box = "[x] "
			}
			label = box + label
		}
		if i == p.Index {
			label = pr.styles.PopupCursor.Render(label)
		}
		b.WriteString("\n" + cursor + label)
	}
	if p.Hint != "" {
		b.WriteString("\n\n" + pr.styles.Help.Render(p.Hint))
	}
	return pr.styles.Popup.Render(b.String())
}

// RenderPopupOverlay draws the popup centered over a greyed copy of the
// main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popup string, width, height int) string {
	popupW := lipgloss.Width(popup)
	popupH := lipgloss.Height(popup)
	x := max((width-popupW)/2, 0)
	y := max((height-popupH)/2, 0)

	base := strings.Split(desaturate(mainContent), "\n")
	for len(base) < y+popupH {
		base = append(base, "")
	}

	for i, line := range strings.Split(popup, "\n") {
		row := base[y+i]
		left := ansi.Truncate(row, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(row, x+ansi.StringWidth(line), "")
		base[y+i] = left + line + right
	}
	return strings.Join(base, "\n")
}

// desaturate strips styles and recolors text dim gray
func desaturate(s string) string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		lines[i] = dim.Render(l)
	}
	return strings.Join(lines, "\n")
}
