package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette of the window chrome.
const (
	ColorTitleFg   = lipgloss.Color("15")
	ColorTitleBg   = lipgloss.Color("24")
	ColorSeparator = lipgloss.Color("240")
	ColorError     = lipgloss.Color("196")
	ColorMuted     = lipgloss.Color("245")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorTitleFg).
			Background(ColorTitleBg).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().Foreground(ColorSeparator)

	statusStyle = lipgloss.NewStyle().Foreground(ColorError)

	helpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// RenderTitle renders the title bar across width columns.
func RenderTitle(title string, width int) string {
	return titleStyle.Width(width).MaxWidth(width).Render(" " + title)
}

// RenderSeparator renders the line between the window and the input bar.
func RenderSeparator(width int) string {
	return separatorStyle.Render(strings.Repeat("─", max(width, 0)))
}

// RenderStatus renders the status line: the last error, or a key reminder.
func RenderStatus(status string, width int) string {
	if status != "" {
		return statusStyle.MaxWidth(width).Render(status)
	}
	return helpStyle.MaxWidth(width).Render("↑/↓: Move | PgUp/PgDn: Scroll | q: Quit | $: Refresh")
}
