package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termify/termify/internal/domain/entity"
)

const tabBarWidth = 80

// RenderTabBar renders the tab strip with the active tab highlighted.
func (t *Theme) RenderTabBar(tabs []entity.Tab, active entity.TabID) string {
	if len(tabs) == 0 {
		return t.Subtle.Render("(no tabs)")
	}

	gap := lipgloss.NewStyle().
		Foreground(t.Border).
		Render(" │ ")

	rendered := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := t.InactiveTab
		if tab.ID == active {
			style = t.ActiveTab
		}
		rendered = append(rendered, style.Render(tabLabel(tab)))
	}

	return t.TabBar.Width(tabBarWidth).Render(strings.Join(rendered, gap))
}

func tabLabel(tab entity.Tab) string {
	if tab.Name != "" {
		return tab.Name
	}
	if tab.IsTerminal() {
		return string(tab.TerminalID)
	}
	return tab.ViewKey
}
