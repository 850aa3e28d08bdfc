package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/cli/styles"
	"github.com/termify/termify/internal/domain/entity"
)

// SwitcherModel is the quick switcher: a fuzzy-searchable list of terminals.
// The caller decides what a selection means (open a tab or complete a pending split).
type SwitcherModel struct {
	// UI components
	search textinput.Model
	help   help.Model
	keys   styles.SwitcherKeyMap

	// State
	title     string
	terminals []*entity.Terminal
	matches   []int // Indexes into terminals, best match first
	cursor    int
	selected  *entity.Terminal
	canceled  bool
	loading   bool
	width     int
	height    int
	err       error

	// Dependencies
	ctx     context.Context
	service port.TerminalService
	theme   *styles.Theme
}

// NewSwitcherModel creates a quick switcher listing the server's terminals.
// title is shown above the search box, e.g. to announce a pending split.
func NewSwitcherModel(ctx context.Context, theme *styles.Theme, terminals port.TerminalService, title string) SwitcherModel {
	search := styles.NewSearchInput(theme)
	search.Focus()

	return SwitcherModel{
		search:    search,
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultSwitcherKeyMap(),
		title:     title,
		loading:   true,
		width:     80,
		height:    24,
		ctx:       ctx,
		service:   terminals,
		theme:     theme,
	}
}

// terminalsLoadedMsg is sent when the terminal list arrives.
type terminalsLoadedMsg struct {
	terminals []*entity.Terminal
	err       error
}

// Init implements tea.Model.
func (m SwitcherModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadTerminals,
	)
}

func (m SwitcherModel) loadTerminals() tea.Msg {
	terminals, err := m.service.List(m.ctx)
	return terminalsLoadedMsg{terminals: terminals, err: err}
}

// Update implements tea.Model.
func (m SwitcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case terminalsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.terminals = msg.terminals
		m.filter()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.matches) == 0 {
				return m, nil
			}
			m.selected = m.terminals[m.matches[m.cursor]]
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}

		var cmd tea.Cmd
		prev := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != prev {
			m.filter()
		}
		return m, cmd
	}

	return m, nil
}

// terminalSource adapts the terminal list to fuzzy.Source.
type terminalSource []*entity.Terminal

func (s terminalSource) String(i int) string {
	return s[i].Name + " " + string(s[i].ID)
}

func (s terminalSource) Len() int { return len(s) }

func (m *SwitcherModel) filter() {
	m.cursor = 0
	query := strings.TrimSpace(m.search.Value())
	if query == "" {
		m.matches = make([]int, len(m.terminals))
		for i := range m.terminals {
			m.matches[i] = i
		}
		return
	}

	found := fuzzy.FindFrom(query, terminalSource(m.terminals))
	m.matches = make([]int, len(found))
	for i, match := range found {
		m.matches[i] = match.Index
	}
}

// View implements tea.Model.
func (m SwitcherModel) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.theme.Title.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.ErrorStyle.Render("Error: " + m.err.Error()))
	case m.loading:
		b.WriteString(m.theme.Subtle.Render("Loading terminals..."))
	case len(m.matches) == 0:
		b.WriteString(m.theme.Subtle.Render("No matching terminals"))
	default:
		b.WriteString(m.renderMatches(m.listHeight()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m SwitcherModel) listHeight() int {
	h := m.height - 6 // Title, search, help
	if h < 5 {
		h = 5
	}
	return h
}

// renderMatches renders a window of matches that keeps the cursor visible.
func (m SwitcherModel) renderMatches(height int) string {
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(m.matches))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		term := m.terminals[m.matches[i]]
		label := fmt.Sprintf("%s %s", term.Name, m.theme.Subtle.Render(string(term.ID)))
		style := m.theme.ListItem
		if i == m.cursor {
			style = m.theme.ListItemSelected
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center,
			style.Render(label), " ", m.theme.StatusBadge(term.Status)))
	}
	return strings.Join(lines, "\n")
}

// Selected returns the chosen terminal once the user pressed enter.
func (m SwitcherModel) Selected() (*entity.Terminal, bool) {
	return m.selected, m.selected != nil
}

// Canceled reports whether the user dismissed the switcher.
func (m SwitcherModel) Canceled() bool {
	return m.canceled
}

// Err returns the load error, if any.
func (m SwitcherModel) Err() error {
	return m.err
}
