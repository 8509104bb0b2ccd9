package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Header      lipgloss.Style
	FocusHeader lipgloss.Style
	DragHeader  lipgloss.Style
	DropTarget  lipgloss.Style
	Separator   lipgloss.Style
	SelectionBg lipgloss.Style
	FocusCell   lipgloss.Style
	Highlight   lipgloss.Style
	Page        lipgloss.Style
	CurrentPage lipgloss.Style
	Popup       lipgloss.Style
	PopupTitle  lipgloss.Style
	PopupCursor lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		FocusHeader: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("51")),
		DragHeader:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
		DropTarget:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("78")),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		FocusCell:   lipgloss.NewStyle().Background(lipgloss.Color("240")).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Page:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		CurrentPage: lipgloss.NewStyle().Bold(true).Reverse(true),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		PopupTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		PopupCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(0, LeftMargin),
	}
}

// StatusColor returns the foreground color for a record status
func StatusColor(status string) string {
	switch status {
	case "available", "delivered":
		return "78" // green
	case "on_delivery", "picked_up":
		return "33" // blue
	case "assigned":
		return "51" // cyan
	case "pending":
		return "214" // yellow
	case "cancelled", "offline":
		return "203" // red
	default:
		return "252"
	}
}
