package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	headingStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	buttonStyle     = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder())
	focusedStyle    = buttonStyle.Bold(true).Border(lipgloss.ThickBorder())
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
