package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"flowstate/internal/analytics"
	"flowstate/internal/domain"
	"flowstate/internal/services"
	"flowstate/internal/ui"
)

// StatsCmd shows focus statistics
type StatsCmd struct {
	Days   int    `help:"Number of days in the daily breakdown" default:"7"`
	Format string `help:"Output format (table, chart or json)" default:"table" enum:"table,chart,json"`
}

// Run executes the stats command
func (s *StatsCmd) Run(container *Container) error {
	if s.Days <= 0 {
		return fmt.Errorf("--days must be positive")
	}

	report, err := container.StatsService.Report(context.Background(), s.Days)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	switch s.Format {
	case "json":
		return writeJSON(report)
	case "chart":
		s.renderChart(report, container)
	default:
		s.renderTable(report, container)
	}
	return nil
}

// renderTable displays the summary and daily breakdown as text
func (s *StatsCmd) renderTable(r services.StatsReport, container *Container) {
	today := container.Clock.Now().Format("2006-01-02")
	fmt.Printf("FlowState Stats - %s\n\n", today)

	sum := r.Summary
	fmt.Printf("%-18s %d days\n", "Streak", sum.Streak)
	fmt.Printf("%-18s %s / %s min (%d%%)\n", "Today",
		formatNumber(sum.TodayMinutes), formatNumber(r.StudyGoal), analytics.CappedPercent(r.GoalProgress))
	fmt.Printf("%-18s %d\n", "Sessions today", sum.TodaySessions)
	fmt.Printf("%-18s %d\n", "Breaks today", sum.BreaksToday)
	fmt.Printf("%-18s %s min in %d sessions\n", "Total focus",
		formatNumber(sum.TotalFocusMinutes), sum.CompletedSessions)
	if sum.HasActivityData {
		fmt.Printf("%-18s %d (%s)\n", "Average score", sum.AverageFocusScore, domain.StatusFor(sum.AverageFocusScore))
	} else {
		fmt.Printf("%-18s %s\n", "Average score", "no activity data")
	}
	fmt.Printf("%-18s %d\n", "Distractions", sum.TotalDistractions)
	fmt.Printf("%-18s %d / %d unlocked\n", "Achievements", r.Unlocked, len(r.Achievements))

	fmt.Println()
	fmt.Println("Date          Minutes     Sessions")
	fmt.Println(strings.Repeat("─", 36))
	total, sessions := 0, 0
	for _, d := range r.Daily {
		fmt.Printf("%-13s %-11s %d\n", d.Date.Format("2006-01-02"), formatNumber(d.Minutes), d.Sessions)
		total += d.Minutes
		sessions += d.Sessions
	}
	fmt.Println(strings.Repeat("─", 36))
	fmt.Printf("%-13s %-11s %d\n", "Total", formatNumber(total), sessions)
}

// renderChart displays the daily and hourly bar charts
func (s *StatsCmd) renderChart(r services.StatsReport, container *Container) {
	today := container.Clock.Now().Format("2006-01-02")
	fmt.Printf("FlowState Stats - %s\n\n", today)

	if r.Summary.TotalSessions == 0 {
		fmt.Println("No focus sessions yet.")
		return
	}

	fmt.Println(ui.RenderDailyChart(r.Daily, r.StudyGoal))
	fmt.Println()
	fmt.Println(ui.RenderHourlyChart(r.Hourly))
}

// formatNumber formats a number with comma separators
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}

	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}

// writeJSON prints v as indented JSON on stdout
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
