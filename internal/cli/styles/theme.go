// Package styles renders termify state for the terminal with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of base colors a Theme is built from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
	Error          string
}

// DefaultPalette is the dark palette used when nothing is configured.
func DefaultPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Error:          "#ef4444",
	}
}

// WithOverrides replaces the accent and muted colors when they are set.
func (p Palette) WithOverrides(accent, muted string) Palette {
	if accent != "" {
		p.Accent = accent
	}
	if muted != "" {
		p.Muted = muted
	}
	return p
}

// Theme holds the lipgloss styles derived from a Palette.
type Theme struct {
	Background     lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Accent         lipgloss.Color
	Muted          lipgloss.Color
	Border         lipgloss.Color
	Success        lipgloss.Color
	Error          lipgloss.Color

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabBar      lipgloss.Style

	SplitNode  lipgloss.Style
	LeafNode   lipgloss.Style
	Enumerator lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Accent:         lipgloss.Color(p.Accent),
		Muted:          lipgloss.Color(p.Muted),
		Border:         lipgloss.Color(p.Border),
		Success:        lipgloss.Color(p.Accent),
		Error:          lipgloss.Color(p.Error),
	}
	bg, text, variant := t.Background, t.Text, t.SurfaceVariant
	surface := lipgloss.Color(p.Surface)

	t.Title = lipgloss.NewStyle().Foreground(text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(bg).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)
	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(surface).
		Padding(0, 2)
	t.TabBar = lipgloss.NewStyle().
		Background(surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border)

	// Pane tree
	t.SplitNode = lipgloss.NewStyle().Foreground(t.Muted).Bold(true)
	t.LeafNode = lipgloss.NewStyle().Foreground(text)
	t.Enumerator = lipgloss.NewStyle().Foreground(t.Border).PaddingRight(1)

	// Quick switcher rows
	t.ListItem = lipgloss.NewStyle().Foreground(text).PaddingLeft(2)
	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(variant).
		PaddingLeft(2).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(bg).
		Background(t.Accent).
		Padding(0, 1)
	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(text).
		Background(variant).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	return t
}
