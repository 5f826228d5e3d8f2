package style

import "github.com/charmbracelet/lipgloss"

var (
	DoubleRightIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).SetString(">> ").Bold(true)
	ChevronIcon     = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).SetString("> ").Bold(true)
)
