package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Rows", []helpEntry{
		{"↑/↓, j/k", "Move the row cursor"},
		{"PgUp/PgDn", "Scroll the page"},
		{"gg/G", "First/last row of the page"},
	}},
	{"Pages", []helpEntry{
		{"←/→, h/l", "Previous/next page"},
		{"[ / ]", "First/last page"},
		{"p", "Choose page size (10, 20, 50, 100)"},
		{"click", "Click a page number to jump to it"},
	}},
	{"Columns", []helpEntry{
		{"</>, Shift+←/→", "Focus previous/next column"},
		{"c", "Show or hide columns"},
		{"m", "Move the focused column (←/→ position, enter drop, esc cancel)"},
		{"drag", "Drag a header with the mouse; drop on its right half to go after it"},
		{"s", "Sort by the focused column, again to flip"},
		{"S", "Clear the sort"},
	}},
	{"Search", []helpEntry{
		{"/", "Search every column of the table"},
		{"enter", "Keep the query and leave the search box"},
		{"esc", "Clear the query"},
	}},
	{"Other", []helpEntry{
		{"tab", "Switch between Drivers and Orders"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	minSearchLength int
	debounce        time.Duration
}

// NewHelpRenderer creates a new help renderer. The search settings are
// quoted in the search section.
func NewHelpRenderer(minSearchLength int, debounce time.Duration) *HelpRenderer {
	return &HelpRenderer{minSearchLength: minSearchLength, debounce: debounce}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("dispatchdash help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
		if section.title == "Search" {
			help.WriteString(noteStyle.Render(fmt.Sprintf(
				"  Queries shorter than %d characters are ignored; results update %s after the last keystroke.",
				r.minSearchLength, r.debounce)))
			help.WriteString("\n")
			help.WriteString(noteStyle.Render("  Status filters: status:available, status:delivered, status:unassigned, status:busy"))
			help.WriteString("\n")
		}
		help.WriteString("\n")
	}

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen before Bubble Tea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
