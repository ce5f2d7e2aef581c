package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent   = lipgloss.Color("#7D56F4")
	colorMuted    = lipgloss.Color("#8A8A8A")
	colorError    = lipgloss.Color("#E5534B")
	colorSelected = lipgloss.Color("#3B3B58")
	colorMine     = lipgloss.Color("#57AB5A")
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Background(colorSelected).Bold(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	mineStyle      = lipgloss.NewStyle().Foreground(colorMine).Bold(true)
	theirsStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
