package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, true-color hex values.
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Background(colorMantle).
			Bold(true).
			Padding(0, 2)

	topicStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Padding(0, 1)

	topicFollowedStyle = lipgloss.NewStyle().
				Foreground(colorTeal).
				Bold(true).
				Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorLavender).
			Bold(true)

	titleStyle = lipgloss.NewStyle().Foreground(colorText)

	favoriteStyle = lipgloss.NewStyle().Foreground(colorYellow)

	summaryStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	readerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	errorStyle = lipgloss.NewStyle().Foreground(colorRed)

	spinnerStyle = lipgloss.NewStyle().Foreground(colorGreen)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 2)
)
