package cmd

import (
	"context"
	"fmt"
	"strings"

	"flowstate/internal/services"
)

// BreaksCmd is the parent command for break management
type BreaksCmd struct {
	Add  BreaksAddCmd  `cmd:"add" help:"Record a completed break"`
	List BreaksListCmd `cmd:"list" help:"List recent breaks" default:"1"`
}

// BreaksAddCmd records a break finished now
type BreaksAddCmd struct {
	Type string `arg:"" optional:"" help:"Kind of break, e.g. \"Walk\" or \"Stretch\""`
}

// Run executes the breaks add command
func (b *BreaksAddCmd) Run(container *Container) error {
	ctx := context.Background()
	record, err := container.BreakService.Complete(ctx, b.Type)
	if err != nil {
		return err
	}

	today, err := container.BreakService.Today(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %q at %s (%d today)\n", record.Type, record.Timestamp.Time().Format("15:04"), today)
	return nil
}

// BreaksListCmd lists recent breaks, newest first
type BreaksListCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	Limit  int    `help:"Maximum number of breaks (0 = all)" default:"5" short:"n"`
}

// Run executes the breaks list command
func (b *BreaksListCmd) Run(container *Container) error {
	ctx := context.Background()
	breaks, err := container.BreakService.Recent(ctx, b.Limit)
	if err != nil {
		return fmt.Errorf("failed to load breaks: %w", err)
	}

	if b.Format == "json" {
		return writeJSON(breaks)
	}

	today, err := container.BreakService.Today(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Breaks today: %d\n\n", today)

	if len(breaks) == 0 {
		fmt.Println("No breaks recorded yet.")
		return nil
	}

	fmt.Printf("%-17s %s\n", "WHEN", "TYPE")
	fmt.Println(strings.Repeat("─", 40))
	for _, br := range breaks {
		label := br.Type
		if label == "" {
			label = services.DefaultBreakType
		}
		fmt.Printf("%-17s %s\n", br.Timestamp.Time().Format("2006-01-02 15:04"), label)
	}
	return nil
}
