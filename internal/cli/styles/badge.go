package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/termify/termify/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a terminal status badge.
func (t *Theme) StatusBadge(status entity.TerminalStatus) string {
	bg := t.SurfaceVariant
	fg := t.Text
	switch status {
	case entity.TerminalRunning:
		bg, fg = t.Success, t.Background
	case entity.TerminalError:
		bg, fg = t.Error, t.Background
	}
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(string(status))
}

// RelativeTime formats tm relative to now as a short human-readable string.
func RelativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case tm.IsZero():
		return "-"
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
