package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"flowstate/internal/config"
	"flowstate/internal/logging"
	"flowstate/internal/telemetry"
)

const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run          RunCmd          `cmd:"" help:"Start the FlowState dashboard (default)" default:"1"`
	Focus        FocusCmd        `cmd:"focus" help:"Run one countdown in the terminal without the dashboard"`
	Stats        StatsCmd        `cmd:"stats" help:"Show focus statistics, streak and daily goal"`
	Achievements AchievementsCmd `cmd:"achievements" help:"Show achievement progress"`
	History      HistoryCmd      `cmd:"history" help:"Show recent focus, activity and break history"`
	Breaks       BreaksCmd       `cmd:"breaks" help:"Record and list breaks"`
	Settings     SettingsCmd     `cmd:"settings" help:"Show and change timer settings, profile and tool options"`
	Data         DataCmd         `cmd:"data" help:"Export, import or clear stored data"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	shutdown  telemetry.Shutdown
	version   string
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetVersion records the build version reported to telemetry
func (c *CLI) SetVersion(version string) {
	c.version = version
}

// AfterApply initializes logging, telemetry and the container after parsing.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply(kctx *kong.Context) error {
	if c.settings != nil {
		if c.MaxLogFiles == defaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("FLOWSTATE_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FLOWSTATE_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Exported so the gorm logger and any child process pick up the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FLOWSTATE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FLOWSTATE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != defaultMaxLogFiles {
		os.Setenv("FLOWSTATE_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	endpoint, insecure := c.telemetryEndpoint()
	shutdown, err := telemetry.Init(context.Background(), endpoint, "flowstate", c.version, insecure)
	if err != nil {
		// Metrics are optional; keep running without them
		logging.Logger.Warn("Telemetry disabled", "error", err)
	} else {
		c.shutdown = shutdown
		if endpoint != "" {
			logging.Logger.Info("Telemetry enabled", "endpoint", endpoint)
		}
	}

	// Container is created after logging so the gorm logger has somewhere to write
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	return nil
}

func (c *CLI) telemetryEndpoint() (string, bool) {
	endpoint := os.Getenv("FLOWSTATE_OTEL_ENDPOINT")
	if endpoint == "" && c.settings != nil {
		endpoint = c.settings.OtelEndpoint
	}

	insecure := false
	if v, ok := os.LookupEnv("FLOWSTATE_OTEL_INSECURE"); ok {
		insecure, _ = strconv.ParseBool(v)
	} else if c.settings != nil && c.settings.OtelInsecure != nil {
		insecure = *c.settings.OtelInsecure
	}
	return endpoint, insecure
}

// Close flushes telemetry and closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.shutdown(ctx); err != nil {
			logging.Logger.Warn("Telemetry shutdown failed", "error", err)
		}
	}
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// settingOr returns the settings.json value when the flag is still at its default
func settingOr[T comparable](flagValue, flagDefault T, setting *T) T {
	if flagValue == flagDefault && setting != nil {
		return *setting
	}
	return flagValue
}
