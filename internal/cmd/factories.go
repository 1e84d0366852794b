package cmd

import (
	"context"
	"fmt"

	adapternotify "flowstate/internal/adapters/notify"
	adaptersound "flowstate/internal/adapters/sound"
	adapterstorage "flowstate/internal/adapters/storage"
	"flowstate/internal/clock"
	"flowstate/internal/config"
	"flowstate/internal/domain"
	"flowstate/internal/ports"
	"flowstate/internal/services"
	"flowstate/internal/telemetry"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	BreakService    *services.BreakService
	MonitorService  *services.MonitorService
	SettingsService *services.SettingsService
	StatsService    *services.StatsService
	TimerService    *services.TimerService
	TransferService *services.TransferService

	// Adapters shared with commands that build their own timer
	Clock    clock.Clock
	Metrics  *telemetry.Instruments
	Notifier ports.Notifier
	Sound    ports.SoundPlayer

	// Internal - for cleanup only
	store ports.CategoryStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	store, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	container, err := newContainerWithStore(
		store,
		adaptersound.NewPlayer(),
		adapternotify.NewDesktopNotifier(),
		clock.SystemClock{},
		telemetry.DefaultInstruments(),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return container, nil
}

func newContainerWithStore(
	store ports.CategoryStore,
	sound ports.SoundPlayer,
	notifier ports.Notifier,
	clk clock.Clock,
	metrics *telemetry.Instruments,
) (*Container, error) {
	sessionLog := services.NewSessionLog(store)
	settingsService := services.NewSettingsService(store)

	timerService := services.NewTimerService(sessionLog, settingsService, notifier, sound, clk, metrics)
	if err := timerService.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load timer settings: %w", err)
	}
	monitorService := services.NewMonitorService(sessionLog, settingsService, sound, clk, metrics)
	if err := monitorService.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &Container{
		BreakService:    services.NewBreakService(sessionLog, clk, metrics),
		MonitorService:  monitorService,
		SettingsService: settingsService,
		StatsService:    services.NewStatsService(sessionLog, settingsService, clk),
		TimerService:    timerService,
		TransferService: services.NewTransferService(store),
		Clock:           clk,
		Metrics:         metrics,
		Notifier:        notifier,
		Sound:           sound,
		store:           store,
	}, nil
}

// FocusTimerOptions customizes a timer built for a single headless countdown
type FocusTimerOptions struct {
	Discard bool             // log completions to memory only
	Minutes int              // overrides the duration of Mode when > 0
	Mode    domain.TimerMode // mode whose duration Minutes overrides
}

// NewFocusTimer builds a timer from the stored settings and profile. Overrides
// live in a scratch settings store, so they never change what is persisted.
func (c *Container) NewFocusTimer(ctx context.Context, opts FocusTimerOptions) (*services.TimerService, error) {
	settings, err := c.SettingsService.TimerSettings(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := c.SettingsService.Profile(ctx)
	if err != nil {
		return nil, err
	}

	if opts.Minutes > 0 {
		switch opts.Mode {
		case domain.ModeShortBreak:
			settings.ShortBreakDuration = opts.Minutes
		case domain.ModeLongBreak:
			settings.LongBreakDuration = opts.Minutes
		default:
			settings.FocusDuration = opts.Minutes
		}
	}

	scratch := services.NewSettingsService(adapterstorage.NewMemoryStore())
	if _, err := scratch.SaveTimerSettings(ctx, settings); err != nil {
		return nil, err
	}
	if _, err := scratch.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	var logStore ports.CategoryStore = c.store
	if opts.Discard {
		logStore = adapterstorage.NewMemoryStore()
	}

	timer := services.NewTimerService(
		services.NewSessionLog(logStore),
		scratch,
		c.Notifier,
		c.Sound,
		c.Clock,
		c.Metrics,
	)
	if err := timer.Load(ctx); err != nil {
		return nil, err
	}
	return timer, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
