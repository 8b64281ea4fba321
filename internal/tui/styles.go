package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555566"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffcc00"))

	previewBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00aaaa"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555566"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))
)
