package cmd

import (
	"context"
	"fmt"
	"strings"

	"flowstate/internal/analytics"
)

// HistoryCmd lists recent focus, activity and break records
type HistoryCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	Limit  int    `help:"Maximum number of entries (0 = all)" default:"20" short:"n"`
}

// Run executes the history command
func (h *HistoryCmd) Run(container *Container) error {
	entries, err := container.StatsService.History(context.Background(), h.Limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if h.Format == "json" {
		return writeJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("%-17s %-9s %-18s %-8s %s\n", "WHEN", "KIND", "LABEL", "MINUTES", "SCORE")
	fmt.Println(strings.Repeat("─", 64))
	for _, e := range entries {
		minutes, score := "", ""
		if e.Kind != analytics.HistoryBreak {
			minutes = fmt.Sprintf("%d", e.Minutes)
		}
		if e.FocusScore != nil {
			score = fmt.Sprintf("%d", *e.FocusScore)
		}
		fmt.Printf("%-17s %-9s %-18s %-8s %s\n",
			e.At.Local().Format("2006-01-02 15:04"),
			e.Kind,
			e.Label,
			minutes,
			score)
	}
	return nil
}
