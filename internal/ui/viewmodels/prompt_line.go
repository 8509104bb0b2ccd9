package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode is the input mode as the view sees it
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
	InputModeColumns
	InputModeReorder
	InputModePageSize
)

var inputModeNames = [...]string{
	InputModeNormal:   "normal",
	InputModeSearch:   "search",
	InputModeColumns:  "columns",
	InputModeReorder:  "reorder",
	InputModePageSize: "page-size",
}

// String is the name the footer key map is looked up by
func (m InputMode) String() string {
	if m < 0 || int(m) >= len(inputModeNames) {
		return inputModeNames[InputModeNormal]
	}
	return inputModeNames[m]
}

const reorderPrompt = "Move column: ←/→ choose position, enter drop, esc cancel"

// PromptLine is the line above the key hints while a mode takes input.
// Picker modes draw a popup instead and leave it empty.
type PromptLine struct {
	mode  InputMode
	query textinput.Model
}

func NewPromptLine(query textinput.Model) *PromptLine {
	return &PromptLine{query: query}
}

func (p *PromptLine) SetMode(mode InputMode) { p.mode = mode }

func (p *PromptLine) Mode() InputMode { return p.mode }

// SetQuery takes a fresh copy of the search box
func (p *PromptLine) SetQuery(query textinput.Model) { p.query = query }

func (p *PromptLine) Text() string {
	switch p.mode {
	case InputModeSearch:
		return "Search: " + p.query.View()
	case InputModeReorder:
		return reorderPrompt
	}
	return ""
}
