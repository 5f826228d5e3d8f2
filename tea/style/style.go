package style

import "github.com/charmbracelet/lipgloss"

var cliHeaderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#FFA000")).
	Padding(0, 2). //nolint:mnd
	BorderTop(true).
	BorderLeft(true).
	BorderRight(true).
	BorderBottom(true).
	Bold(true).
	Italic(true).
	Align(lipgloss.Center).
	Width(40) //nolint:mnd

func CLIHeader(title string, description string) string {
	return cliHeaderStyle.Render(title) + "\n" + description
}

func ForegroundPrint(text string, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
