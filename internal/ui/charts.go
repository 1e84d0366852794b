package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"flowstate/internal/analytics"
	"flowstate/internal/theme"
)

const (
	hourlyChartHeight   = 8
	hourlyChartWidth    = 96 // 24 hours, 3 columns each plus a gap
	hourlyChartBarWidth = 3
	hourlyChartBarGap   = 1

	dailyChartHeight   = 8
	dailyChartBarWidth = 5
	dailyChartBarGap   = 2
)

// RenderHourlyChart renders completed focus sessions per hour of day.
// Shared by the dashboard and the stats command.
func RenderHourlyChart(hourly [24]int) string {
	var sb strings.Builder

	total, peakHour, peak := 0, 0, 0
	for hour, n := range hourly {
		total += n
		if n > peak {
			peak, peakHour = n, hour
		}
	}

	legend := fmt.Sprintf("Sessions by hour: %d total", total)
	if peak > 0 {
		legend += fmt.Sprintf(" (peak %02d:00 with %d)", peakHour, peak)
	}
	sb.WriteString(theme.ChartLegendStyle.Render(legend))
	sb.WriteString("\n\n")

	chart := newBarChart(hourlyChartWidth, hourlyChartHeight, hourlyChartBarWidth, hourlyChartBarGap, float64(max(peak, 1)))
	barStyle := lipgloss.NewStyle().Foreground(theme.ColorChartBar)
	for hour, n := range hourly {
		label := ""
		if hour%3 == 0 {
			label = fmt.Sprintf("%02d", hour)
		}
		chart.Push(barchart.BarData{
			Label:  label,
			Values: []barchart.BarValue{{Name: "sessions", Value: float64(n), Style: barStyle}},
		})
	}

	chart.Draw()
	sb.WriteString(chart.View())
	return sb.String()
}

// RenderDailyChart renders completed focus minutes per day, oldest first
func RenderDailyChart(days []analytics.DayTotal, goal int) string {
	var sb strings.Builder

	peak := goal
	for _, d := range days {
		peak = max(peak, d.Minutes)
	}

	sb.WriteString(theme.ChartLegendStyle.Render(fmt.Sprintf("Focus minutes per day (goal %d)", goal)))
	sb.WriteString("\n\n")

	width := max(len(days)*(dailyChartBarWidth+dailyChartBarGap), dailyChartBarWidth)
	chart := newBarChart(width, dailyChartHeight, dailyChartBarWidth, dailyChartBarGap, float64(max(peak, 1)))
	barStyle := lipgloss.NewStyle().Foreground(theme.ColorChartBar)
	goalStyle := lipgloss.NewStyle().Foreground(theme.ColorGoal)
	for _, d := range days {
		style := barStyle
		if goal > 0 && d.Minutes >= goal {
			style = goalStyle
		}
		chart.Push(barchart.BarData{
			Label:  d.Date.Format("Mon"),
			Values: []barchart.BarValue{{Name: "minutes", Value: float64(d.Minutes), Style: style}},
		})
	}

	chart.Draw()
	sb.WriteString(chart.View())
	return sb.String()
}

func newBarChart(width, height, barWidth, barGap int, maxValue float64) barchart.Model {
	axisStyle := lipgloss.NewStyle().Foreground(theme.ColorMuted)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	chart := barchart.New(width, height, barchart.WithStyles(axisStyle, labelStyle))
	chart.SetBarWidth(barWidth)
	chart.SetBarGap(barGap)
	chart.SetMax(maxValue)
	return chart
}
