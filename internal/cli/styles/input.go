package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewSearchInput creates the terminal search input of the quick switcher.
func NewSearchInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Search terminals...")
	ti.Prompt = "> "
	ti.CharLimit = 256
	return ti
}
