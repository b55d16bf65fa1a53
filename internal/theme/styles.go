package theme

import "github.com/charmbracelet/lipgloss"

// Command output styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
