package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3"))

	hitListStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	canvasStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	// hotStyle highlights colliding bodies on the canvas.
	hotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)
