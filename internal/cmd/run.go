package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flowstate/internal/adapters/lock"
	"flowstate/internal/config"
	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ui"
)

const defaultErrorClearDelay = 10

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in the header)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	ShowHourlyChart bool `help:"Show the hourly focus chart on the stats tab" default:"false"`
	SingleInstance  bool `help:"Refuse to start while another dashboard is running" default:"true" negatable:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		r.ErrorClearDelay = settingOr(r.ErrorClearDelay, defaultErrorClearDelay, cli.settings.ErrorClearDelay)

		r.ShowHourlyChart = settingOr(r.ShowHourlyChart, false, cli.settings.ShowHourlyChart)

		if r.SingleInstance && cli.settings.SingleInstance != nil {
			r.SingleInstance = *cli.settings.SingleInstance
		}
	}

	logging.Logger.Info("Starting FlowState TUI")

	if r.SingleInstance {
		fileLock, err := lock.Acquire(config.GetLockPath())
		if err != nil {
			if errors.Is(err, domain.ErrSessionLocked) {
				return fmt.Errorf("%w (use --no-single-instance to override)", err)
			}
			return err
		}
		defer fileLock.Release()
	}

	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	c := cli.Container
	p := tea.NewProgram(
		ui.NewModel(
			time.Duration(r.ErrorClearDelay)*time.Second,
			r.Dev,
			r.ShowHourlyChart,
			keysConfig,
			c.TimerService,
			c.MonitorService,
			c.BreakService,
			c.StatsService,
			c.SettingsService,
		),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // pointer movement feeds the activity monitor
		tea.WithReportFocus(),    // focus loss counts as a distraction
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
