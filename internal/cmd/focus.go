package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flowstate/internal/adapters/lock"
	"flowstate/internal/config"
	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/services"
)

// FocusCmd runs a single countdown in the terminal
type FocusCmd struct {
	Minutes int    `help:"Override the countdown length in minutes for this run" default:"0"`
	Mode    string `help:"Countdown to run (focus, short_break, long_break)" default:"focus" enum:"focus,short_break,long_break"`
	NoSave  bool   `help:"Do not record the completed session"`
	Quiet   bool   `help:"Only print the final result" short:"q"`
}

// Run executes the focus command
func (f *FocusCmd) Run(container *Container) error {
	mode, err := domain.ParseTimerMode(f.Mode)
	if err != nil {
		return err
	}
	if f.Minutes < 0 {
		return fmt.Errorf("--minutes must not be negative")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !f.NoSave {
		fileLock, err := lock.Acquire(config.GetLockPath())
		if err != nil {
			return err
		}
		defer fileLock.Release()
	}

	timer, err := container.NewFocusTimer(ctx, FocusTimerOptions{
		Discard: f.NoSave,
		Minutes: f.Minutes,
		Mode:    mode,
	})
	if err != nil {
		return err
	}
	if err := timer.SwitchMode(mode); err != nil {
		return err
	}

	completed := make(chan *domain.Completion, 1)
	runner := services.NewRunner(0, func(ctx context.Context) {
		completion, err := timer.Tick(ctx)
		if err != nil {
			logging.Logger.Error("Failed to record completion", "error", err)
			fmt.Fprintf(os.Stderr, "\nWarning: %v\n", err)
		}
		if completion != nil {
			select {
			case completed <- completion:
			default:
			}
			return
		}
		if !f.Quiet {
			f.printProgress(timer.State())
		}
	})

	timer.Start()
	if !f.Quiet {
		f.printProgress(timer.State())
	}
	runner.Start(ctx)
	defer runner.Stop()

	select {
	case <-ctx.Done():
		runner.Stop()
		fmt.Println()
		fmt.Printf("%s interrupted with %s left; nothing recorded.\n",
			mode.Label(), domain.FormatClock(timer.State().RemainingSeconds))
		return nil
	case completion := <-completed:
		runner.Stop()
		// The headless run ends after one countdown even when breaks auto-start
		timer.Pause()
		f.printCompletion(completion)
		return nil
	}
}

func (f *FocusCmd) printProgress(state domain.TimerState) {
	fmt.Printf("\r%-12s %s ", state.Mode.Label(), domain.FormatClock(state.RemainingSeconds))
}

func (f *FocusCmd) printCompletion(c *domain.Completion) {
	if !f.Quiet {
		fmt.Println()
	}

	switch {
	case c.Record == nil:
		fmt.Printf("%s complete. Ready to focus again?\n", c.From.Label())
	case f.NoSave:
		fmt.Printf("Focus complete: %d minutes (not saved). Next: %s\n", c.Record.Duration, c.To.Label())
	default:
		fmt.Printf("Focus complete: %d minutes recorded. Next: %s\n", c.Record.Duration, c.To.Label())
	}
}
