package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/termify/termify/internal/domain/build"
)

const (
	IconCheck = "✓"
	IconCross = "✗"
	IconInfo  = "•"
)

// RenderSuccess renders a one-line success message.
func (t *Theme) RenderSuccess(format string, args ...any) string {
	icon := lipgloss.NewStyle().Foreground(t.Success).Render(IconCheck)
	return fmt.Sprintf("%s %s", icon, t.Normal.Render(fmt.Sprintf(format, args...)))
}

// RenderInfo renders a one-line neutral message.
func (t *Theme) RenderInfo(format string, args ...any) string {
	return fmt.Sprintf("%s %s", t.Subtle.Render(IconInfo), t.Normal.Render(fmt.Sprintf(format, args...)))
}

// RenderFailure renders an error message.
func (t *Theme) RenderFailure(err error) string {
	icon := lipgloss.NewStyle().Foreground(t.Error).Render(IconCross)
	return fmt.Sprintf("%s %s", icon, t.ErrorStyle.Render(err.Error()))
}

// RenderVersion renders build information as a small box.
func (t *Theme) RenderVersion(info build.Info) string {
	label := t.Subtle.Width(8)
	lines := []string{
		t.Highlight.Render("termify") + " " + t.Normal.Render(info.Version),
		"",
		label.Render("commit") + " " + t.Normal.Render(orDash(info.Commit)),
		label.Render("built") + " " + t.Normal.Render(orDash(info.BuildDate)),
		label.Render("go") + " " + t.Normal.Render(orDash(info.GoVersion)),
		label.Render("repo") + " " + t.Subtle.Render(build.RepoURL()),
	}
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
