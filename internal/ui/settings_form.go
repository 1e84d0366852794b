package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"flowstate/internal/domain"
)

// SettingsFormResult holds the edited timer settings and profile
type SettingsFormResult struct {
	Cancelled bool
	Profile   domain.UserProfile
	Timer     domain.TimerSettings
}

// SettingsForm is a Bubble Tea component for editing timer durations and the user profile
type SettingsForm struct {
	Completed bool
	form      *huh.Form
	profile   domain.UserProfile
	result    SettingsFormResult

	// Text inputs bound to the form
	focus      string
	goal       string
	longBreak  string
	shortBreak string
	untilLong  string
}

// NewSettingsForm creates a form prefilled with the current values
func NewSettingsForm(settings domain.TimerSettings, profile domain.UserProfile) *SettingsForm {
	sf := &SettingsForm{
		focus:      strconv.Itoa(settings.FocusDuration),
		goal:       strconv.Itoa(profile.StudyGoal),
		longBreak:  strconv.Itoa(settings.LongBreakDuration),
		profile:    profile,
		shortBreak: strconv.Itoa(settings.ShortBreakDuration),
		untilLong:  strconv.Itoa(settings.SessionsUntilLongBreak),
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			minutesInput("Focus duration", &sf.focus),
			minutesInput("Short break", &sf.shortBreak),
			minutesInput("Long break", &sf.longBreak),
			huh.NewInput().
				Title("Sessions until long break").
				Value(&sf.untilLong).
				Validate(validatePositive),
		).Title("Timer"),
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&sf.profile.Name),
			minutesInput("Daily study goal", &sf.goal),
			huh.NewConfirm().
				Title("Start breaks automatically?").
				Value(&sf.profile.AutoStartBreaks),
			huh.NewConfirm().
				Title("Desktop notifications?").
				Value(&sf.profile.Notifications),
			huh.NewConfirm().
				Title("Play sounds?").
				Value(&sf.profile.SoundEnabled),
		).Title("Profile"),
	)

	return sf
}

func minutesInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("minutes").
		Value(value).
		Validate(validatePositive)
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number greater than zero")
	}
	return nil
}

// parseMinutes falls back when the input is not a positive integer
func parseMinutes(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	switch sf.form.State {
	case huh.StateCompleted:
		sf.Completed = true
		sf.result = sf.collect()
		return sf, nil
	case huh.StateAborted:
		sf.Completed = true
		sf.result.Cancelled = true
		return sf, nil
	}

	return sf, cmd
}

func (sf *SettingsForm) collect() SettingsFormResult {
	defaults := domain.DefaultTimerSettings()
	profile := sf.profile
	profile.StudyGoal = parseMinutes(sf.goal, domain.DefaultStudyGoal)

	return SettingsFormResult{
		Profile: profile,
		Timer: domain.TimerSettings{
			FocusDuration:          parseMinutes(sf.focus, defaults.FocusDuration),
			ShortBreakDuration:     parseMinutes(sf.shortBreak, defaults.ShortBreakDuration),
			LongBreakDuration:      parseMinutes(sf.longBreak, defaults.LongBreakDuration),
			SessionsUntilLongBreak: parseMinutes(sf.untilLong, defaults.SessionsUntilLongBreak),
		},
	}
}

func (sf *SettingsForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the form result
func (sf *SettingsForm) Result() SettingsFormResult {
	return sf.result
}
