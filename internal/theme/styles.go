package theme

import (
	"github.com/charmbracelet/lipgloss"

	"flowstate/internal/domain"
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Tab bar styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Background(ColorPrimary).
			Padding(0, 2)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 2)
)

// Content styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	GoalStyle = lipgloss.NewStyle().
			Foreground(ColorGoal)

	ChartLegendStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Error and help styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)

// Achievement styles
var (
	LockedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	UnlockedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// ModeColor returns the accent color of a timer mode
func ModeColor(mode domain.TimerMode) Color {
	switch mode {
	case domain.ModeShortBreak:
		return ColorShortBreak
	case domain.ModeLongBreak:
		return ColorLongBreak
	default:
		return ColorFocus
	}
}

// ScoreColor returns the color of a focus score band
func ScoreColor(status domain.FocusStatus) Color {
	switch status {
	case domain.StatusExcellent:
		return ColorScoreExcellent
	case domain.StatusGood:
		return ColorScoreGood
	case domain.StatusModerate:
		return ColorScoreModerate
	default:
		return ColorScoreLow
	}
}

// RarityColor returns the color of an achievement rarity
func RarityColor(rarity domain.Rarity) Color {
	switch rarity {
	case domain.RarityLegendary:
		return ColorLegendary
	case domain.RarityEpic:
		return ColorEpic
	case domain.RarityRare:
		return ColorRare
	default:
		return ColorCommon
	}
}
