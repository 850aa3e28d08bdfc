package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/termify/termify/internal/domain/entity"
)

// RenderTable renders a static bordered table.
func (t *Theme) RenderTable(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Padding(0, 1)
	cell := lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}

// WorkspaceTable renders workspaces with the active one marked.
func (t *Theme) WorkspaceTable(workspaces []*entity.Workspace, active entity.WorkspaceID) string {
	rows := make([][]string, 0, len(workspaces))
	for _, ws := range workspaces {
		mark := ""
		if ws.ID == active {
			mark = "●"
		}
		def := ""
		if ws.IsDefault {
			def = "yes"
		}
		rows = append(rows, []string{
			mark,
			string(ws.ID),
			ws.Name,
			def,
			strconv.Itoa(ws.Position),
		})
	}
	return t.RenderTable([]string{"", "ID", "Name", "Default", "Pos"}, rows)
}

// TabTable renders the tab registry.
func (t *Theme) TabTable(tabs []entity.Tab, active entity.TabID) string {
	rows := make([][]string, 0, len(tabs))
	for _, tab := range tabs {
		mark := ""
		if tab.ID == active {
			mark = "●"
		}
		target := string(tab.TerminalID)
		if !tab.IsTerminal() {
			target = tab.ViewKey
		}
		rows = append(rows, []string{
			mark,
			strconv.Itoa(tab.Position),
			string(tab.ID),
			tab.Type.String(),
			target,
			tab.Name,
		})
	}
	return t.RenderTable([]string{"", "#", "ID", "Type", "Target", "Name"}, rows)
}

// TerminalTable renders server terminals.
func (t *Theme) TerminalTable(terminals []*entity.Terminal, now time.Time) string {
	rows := make([][]string, 0, len(terminals))
	for _, term := range terminals {
		rows = append(rows, []string{
			string(term.ID),
			term.Name,
			string(term.Status),
			string(term.WorkspaceID),
			strconv.Itoa(term.Cols) + "x" + strconv.Itoa(term.Rows),
			RelativeTime(term.CreatedAt, now),
		})
	}
	return t.RenderTable([]string{"ID", "Name", "Status", "Workspace", "Size", "Created"}, rows)
}
