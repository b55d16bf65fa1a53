package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - values
)

// UI semantic colors
const (
	ColorError   Color = "196" // Bright red
	ColorSubtle  Color = "245" // Light gray - labels
	ColorWarning Color = "214" // Orange - fallbacks
)
