package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Timer mode colors
const (
	ColorFocus      Color = "203" // Tomato - focus countdown
	ColorLongBreak  Color = "39"  // Blue - long break
	ColorShortBreak Color = "42"  // Green - short break
)

// Focus score bands
const (
	ColorScoreExcellent Color = "46"  // Green
	ColorScoreGood      Color = "33"  // Blue
	ColorScoreLow       Color = "196" // Red
	ColorScoreModerate  Color = "214" // Orange
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Chart and achievement colors
const (
	ColorChartBar  Color = "141" // Purple
	ColorGoal      Color = "226" // Yellow
	ColorLegendary Color = "208" // Orange
	ColorEpic      Color = "135" // Violet
	ColorRare      Color = "39"  // Blue
	ColorCommon    Color = "250" // Default text
)
