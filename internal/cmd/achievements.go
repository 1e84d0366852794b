package cmd

import (
	"context"
	"fmt"
	"strings"

	"flowstate/internal/analytics"
)

// AchievementsCmd lists achievements and their progress
type AchievementsCmd struct {
	Format   string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	Unlocked bool   `help:"Only show unlocked achievements"`
}

// Run executes the achievements command
func (a *AchievementsCmd) Run(container *Container) error {
	achievements, err := container.StatsService.Achievements(context.Background())
	if err != nil {
		return fmt.Errorf("failed to evaluate achievements: %w", err)
	}

	unlocked, total := analytics.UnlockedCount(achievements), len(achievements)
	if a.Unlocked {
		filtered := achievements[:0]
		for _, ach := range achievements {
			if ach.Unlocked {
				filtered = append(filtered, ach)
			}
		}
		achievements = filtered
	}

	if a.Format == "json" {
		return writeJSON(achievements)
	}

	fmt.Printf("Achievements - %d of %d unlocked\n\n", unlocked, total)
	if len(achievements) == 0 {
		fmt.Println("No achievements unlocked yet.")
		return nil
	}

	fmt.Printf("%-3s %-3s %-18s %-10s %-12s %s\n", "", "", "TITLE", "RARITY", "PROGRESS", "DESCRIPTION")
	fmt.Println(strings.Repeat("─", 80))
	for _, ach := range achievements {
		mark := " "
		if ach.Unlocked {
			mark = "✓"
		}
		fmt.Printf("%-3s %-3s %-18s %-10s %-12s %s\n",
			mark,
			ach.Icon,
			ach.Title,
			ach.Rarity,
			fmt.Sprintf("%d/%d", min(ach.Progress, ach.Target), ach.Target),
			ach.Description)
	}
	return nil
}
