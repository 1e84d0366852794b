package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"flowstate/internal/config"
	"flowstate/internal/domain"
)

// SettingsCmd manages timer settings, the user profile and tool options
type SettingsCmd struct {
	Show    SettingsShowCmd    `cmd:"show" help:"Show timer settings and profile" default:"1"`
	Timer   SettingsTimerCmd   `cmd:"timer" help:"Change timer durations"`
	Profile SettingsProfileCmd `cmd:"profile" help:"Change the user profile"`
	Meta    SettingsMetaCmd    `cmd:"meta" help:"Show settings file location and available options"`
}

// SettingsShowCmd prints the stored timer settings and profile
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(container *Container) error {
	ctx := context.Background()
	timer, err := container.SettingsService.TimerSettings(ctx)
	if err != nil {
		return err
	}
	profile, err := container.SettingsService.Profile(ctx)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return writeJSON(map[string]any{
			string(domain.CategoryTimerSettings): timer,
			string(domain.CategoryUserProfile):   profile,
		})
	}

	printTimerSettings(timer)
	fmt.Println()
	printProfile(profile)
	return nil
}

func printTimerSettings(t domain.TimerSettings) {
	fmt.Println("Timer")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  focus\t%d min\n", t.FocusDuration)
	fmt.Fprintf(w, "  short break\t%d min\n", t.ShortBreakDuration)
	fmt.Fprintf(w, "  long break\t%d min\n", t.LongBreakDuration)
	fmt.Fprintf(w, "  sessions until long break\t%d\n", t.SessionsUntilLongBreak)
	w.Flush()
}

func printProfile(p domain.UserProfile) {
	fmt.Println("Profile")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  name\t%s\n", p.Name)
	fmt.Fprintf(w, "  email\t%s\n", p.Email)
	fmt.Fprintf(w, "  daily goal\t%d min\n", p.StudyGoal)
	fmt.Fprintf(w, "  auto-start breaks\t%t\n", p.AutoStartBreaks)
	fmt.Fprintf(w, "  notifications\t%t\n", p.Notifications)
	fmt.Fprintf(w, "  sound\t%t\n", p.SoundEnabled)
	fmt.Fprintf(w, "  theme\t%s\n", p.Theme)
	w.Flush()
}

// SettingsTimerCmd changes timer durations. Zero leaves a value unchanged.
type SettingsTimerCmd struct {
	Focus                  int  `help:"Focus duration in minutes (0 = unchanged)" default:"0"`
	LongBreak              int  `help:"Long break duration in minutes (0 = unchanged)" default:"0"`
	Reset                  bool `help:"Restore the default 25/5/15 cycle"`
	SessionsUntilLongBreak int  `help:"Focus sessions before a long break (0 = unchanged)" default:"0"`
	ShortBreak             int  `help:"Short break duration in minutes (0 = unchanged)" default:"0"`
}

// Run executes the timer command
func (s *SettingsTimerCmd) Run(container *Container) error {
	ctx := context.Background()

	settings := domain.DefaultTimerSettings()
	if !s.Reset {
		current, err := container.SettingsService.TimerSettings(ctx)
		if err != nil {
			return err
		}
		settings = current
	}

	for _, v := range []int{s.Focus, s.ShortBreak, s.LongBreak, s.SessionsUntilLongBreak} {
		if v < 0 {
			return fmt.Errorf("durations must be positive")
		}
	}
	settings.FocusDuration = orCurrent(s.Focus, settings.FocusDuration)
	settings.ShortBreakDuration = orCurrent(s.ShortBreak, settings.ShortBreakDuration)
	settings.LongBreakDuration = orCurrent(s.LongBreak, settings.LongBreakDuration)
	settings.SessionsUntilLongBreak = orCurrent(s.SessionsUntilLongBreak, settings.SessionsUntilLongBreak)

	saved, err := container.TimerService.UpdateSettings(ctx, settings)
	if err != nil {
		return err
	}
	printTimerSettings(saved)
	return nil
}

func orCurrent(flag, current int) int {
	if flag > 0 {
		return flag
	}
	return current
}

// SettingsProfileCmd changes the user profile. Unset flags keep their value.
type SettingsProfileCmd struct {
	AutoStartBreaks string `help:"Start break countdowns automatically" enum:"on,off,keep" default:"keep"`
	Email           string `help:"Email address"`
	Goal            int    `help:"Daily focus goal in minutes (0 = unchanged)" default:"0"`
	Name            string `help:"Display name"`
	Notifications   string `help:"Desktop notifications when a countdown ends" enum:"on,off,keep" default:"keep"`
	Sound           string `help:"Play a sound when a countdown ends" enum:"on,off,keep" default:"keep"`
	StudyType       string `help:"What you are studying"`
	Theme           string `help:"Preferred theme" enum:"light,dark,keep" default:"keep"`
}

// Run executes the profile command
func (s *SettingsProfileCmd) Run(container *Container) error {
	ctx := context.Background()
	profile, err := container.SettingsService.Profile(ctx)
	if err != nil {
		return err
	}

	if s.Goal < 0 {
		return fmt.Errorf("--goal must be positive")
	}
	profile.StudyGoal = orCurrent(s.Goal, profile.StudyGoal)
	if s.Name != "" {
		profile.Name = s.Name
	}
	if s.Email != "" {
		profile.Email = s.Email
	}
	if s.StudyType != "" {
		profile.StudyType = s.StudyType
	}
	if s.Theme != "keep" {
		profile.Theme = s.Theme
	}
	profile.AutoStartBreaks = toggle(s.AutoStartBreaks, profile.AutoStartBreaks)
	profile.Notifications = toggle(s.Notifications, profile.Notifications)
	profile.SoundEnabled = toggle(s.Sound, profile.SoundEnabled)

	saved, err := container.SettingsService.SaveProfile(ctx, profile)
	if err != nil {
		return err
	}
	printProfile(saved)
	return nil
}

func toggle(flag string, current bool) bool {
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return current
	}
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case map[string]any, []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure flowstate.")
	fmt.Println("Timer durations and the profile are stored with your sessions; use 'flowstate settings timer|profile'.")

	return nil
}
