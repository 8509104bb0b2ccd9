package viewmodels

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
)

func TestPromptLineText(t *testing.T) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue("harbor")
	p := NewPromptLine(ti)

	assert.Empty(t, p.Text())

	p.SetMode(InputModeSearch)
	assert.Contains(t, p.Text(), "Search: ")
	assert.Contains(t, p.Text(), "harbor")

	p.SetMode(InputModeReorder)
	assert.Contains(t, p.Text(), "Move column")

	p.SetMode(InputModePageSize)
	assert.Empty(t, p.Text(), "pickers draw a popup instead")
}

func TestInputModeString(t *testing.T) {
	assert.Equal(t, "search", InputModeSearch.String())
	assert.Equal(t, "page-size", InputModePageSize.String())
	assert.Equal(t, "normal", InputMode(42).String())
	assert.Equal(t, "normal", InputMode(-1).String())
}
