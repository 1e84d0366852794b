package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flowstate/internal/analytics"
	"flowstate/internal/config"
	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/services"
	"flowstate/internal/theme"
)

type uiState int

const (
	stateDashboard uiState = iota
	stateSettings
)

type tab int

const (
	tabTimer tab = iota
	tabActivity
	tabStats
	tabCount
)

var tabNames = [tabCount]string{"Timer", "Activity", "Stats"}

const (
	statsDays        = 7
	maxProgressWidth = 60
)

type Model struct {
	breakService    *services.BreakService
	devMode         bool
	errorManager    *ErrorManager
	height          int
	help            help.Model
	keys            KeyMap
	lastSample      domain.ActivitySample
	monitorGen      int // Bumped on every monitor start/stop
	monitorService  *services.MonitorService
	notice          string
	progress        progress.Model
	report          services.StatsReport
	reportLoaded    bool
	settingsDialog  *Dialog
	settingsService *services.SettingsService
	showHourlyChart bool
	state           uiState
	statsService    *services.StatsService
	tab             tab
	timerGen        int // Bumped on every start/pause/reset/switch
	timerService    *services.TimerService
	width           int
}

func NewModel(
	errorClearDelay time.Duration,
	devMode bool,
	showHourlyChart bool,
	keysConfig config.KeyBindingsConfig,
	timerService *services.TimerService,
	monitorService *services.MonitorService,
	breakService *services.BreakService,
	statsService *services.StatsService,
	settingsService *services.SettingsService,
) *Model {
	return &Model{
		breakService:    breakService,
		devMode:         devMode,
		errorManager:    NewErrorManager(errorClearDelay),
		help:            help.New(),
		keys:            NewKeyMap(keysConfig),
		monitorService:  monitorService,
		progress:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxProgressWidth)),
		settingsService: settingsService,
		showHourlyChart: showHourlyChart,
		state:           stateDashboard,
		statsService:    statsService,
		timerService:    timerService,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadStats()}
	if m.timerService.State().Running {
		cmds = append(cmds, timerTick(m.timerGen))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	// Ticks, input accounting and async results apply in every state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-4))
		m.help.Width = msg.Width
	case clearErrorMsg:
		m.errorManager.handleClear(msg)
		return m, nil
	case timerTickMsg:
		return m, m.handleTimerTick(ctx, msg)
	case monitorTickMsg:
		return m, m.handleMonitorTick(ctx, msg)
	case statsLoadedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to load stats", "error", msg.err)
			return m, m.errorManager.SetError(msg.err)
		}
		m.report = msg.report
		m.reportLoaded = true
		return m, nil
	case tea.BlurMsg:
		if m.monitorService.VisibilityLost(ctx) {
			m.notice = "Distraction recorded: FlowState lost focus"
		}
		return m, nil
	case tea.FocusMsg:
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.monitorService.RecordMouseMove()
		}
		return m, nil
	case tea.KeyMsg:
		m.monitorService.RecordKeyPress()
	}

	switch m.state {
	case stateSettings:
		return m.updateSettings(ctx, msg)
	default:
		return m.updateDashboard(ctx, msg)
	}
}

func (m *Model) updateDashboard(ctx context.Context, msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit, m.keys.ForceQuit):
		m.stopMonitoringOnExit(ctx)
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(keyMsg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
	case key.Matches(keyMsg, m.keys.HourlyChart):
		m.showHourlyChart = !m.showHourlyChart
	case key.Matches(keyMsg, m.keys.Toggle):
		return m, m.toggleTimer()
	case key.Matches(keyMsg, m.keys.Reset):
		m.timerService.Reset()
		m.timerGen++
		m.notice = ""
	case key.Matches(keyMsg, m.keys.SwitchMode):
		return m, m.setMode(nextMode(m.timerService.State().Mode))
	case key.Matches(keyMsg, m.keys.FocusMode):
		return m, m.setMode(domain.ModeFocus)
	case key.Matches(keyMsg, m.keys.ShortBreakMode):
		return m, m.setMode(domain.ModeShortBreak)
	case key.Matches(keyMsg, m.keys.LongBreakMode):
		return m, m.setMode(domain.ModeLongBreak)
	case key.Matches(keyMsg, m.keys.Monitor):
		return m, m.toggleMonitor(ctx)
	case key.Matches(keyMsg, m.keys.BreakDone):
		return m, m.completeBreak(ctx)
	case key.Matches(keyMsg, m.keys.Settings):
		return m, m.openSettings(ctx)
	}
	return m, nil
}

func (m *Model) toggleTimer() tea.Cmd {
	running := m.timerService.Toggle()
	m.timerGen++
	if running {
		return timerTick(m.timerGen)
	}
	return nil
}

// nextMode cycles focus, short break, long break
func nextMode(mode domain.TimerMode) domain.TimerMode {
	switch mode {
	case domain.ModeFocus:
		return domain.ModeShortBreak
	case domain.ModeShortBreak:
		return domain.ModeLongBreak
	default:
		return domain.ModeFocus
	}
}

func (m *Model) setMode(mode domain.TimerMode) tea.Cmd {
	if err := m.timerService.SwitchMode(mode); err != nil {
		return m.errorManager.SetError(err)
	}
	m.timerGen++
	m.notice = ""
	return nil
}

func (m *Model) handleTimerTick(ctx context.Context, msg timerTickMsg) tea.Cmd {
	if msg.gen != m.timerGen {
		return nil
	}

	completion, err := m.timerService.Tick(ctx)
	var cmds []tea.Cmd
	if err != nil {
		logging.Logger.Error("Timer tick failed", "error", err)
		cmds = append(cmds, m.errorManager.SetError(err))
	}
	if completion != nil {
		m.notice = completionNotice(completion)
		cmds = append(cmds, m.loadStats())
	}
	if m.timerService.State().Running {
		cmds = append(cmds, timerTick(m.timerGen))
	}
	return tea.Batch(cmds...)
}

func completionNotice(c *domain.Completion) string {
	if c.From == domain.ModeFocus {
		return fmt.Sprintf("Focus session complete! Time for a %s.", strings.ToLower(c.To.Label()))
	}
	return "Break over. Ready to focus again?"
}

func (m *Model) toggleMonitor(ctx context.Context) tea.Cmd {
	m.monitorGen++
	if !m.monitorService.Active() {
		m.monitorService.Start()
		m.lastSample = domain.ActivitySample{}
		m.notice = "Activity monitoring started"
		return monitorTick(m.monitorGen)
	}

	record, err := m.monitorService.Stop(ctx)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	m.notice = fmt.Sprintf("Monitoring stopped: final focus score %d with %d distractions",
		record.FinalFocusScore, record.TotalDistractions)
	return m.loadStats()
}

func (m *Model) handleMonitorTick(ctx context.Context, msg monitorTickMsg) tea.Cmd {
	if msg.gen != m.monitorGen {
		return nil
	}
	sample, ok := m.monitorService.Tick(ctx)
	if !ok {
		return nil
	}
	m.lastSample = sample
	return monitorTick(m.monitorGen)
}

func (m *Model) stopMonitoringOnExit(ctx context.Context) {
	if !m.monitorService.Active() {
		return
	}
	if _, err := m.monitorService.Stop(ctx); err != nil {
		logging.Logger.Warn("Failed to save activity session on exit", "error", err)
	}
}

func (m *Model) completeBreak(ctx context.Context) tea.Cmd {
	breakType := services.DefaultBreakType
	if mode := m.timerService.State().Mode; mode.IsBreak() {
		breakType = mode.Label()
	}

	if _, err := m.breakService.Complete(ctx, breakType); err != nil {
		return m.errorManager.SetError(err)
	}
	m.notice = fmt.Sprintf("%s recorded", breakType)
	return m.loadStats()
}

func (m *Model) openSettings(ctx context.Context) tea.Cmd {
	profile, err := m.settingsService.Profile(ctx)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	form := NewSettingsForm(m.timerService.Settings(), profile)
	m.settingsDialog = NewDialog("Settings", form, m.devMode)
	m.state = stateSettings
	return m.settingsDialog.Init()
}

func (m *Model) updateSettings(ctx context.Context, msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.settingsDialog.Update(msg)
	m.settingsDialog = updated.(*Dialog)

	content, ok := m.settingsDialog.Content().(*SettingsForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	m.state = stateDashboard
	m.settingsDialog = nil

	result := content.Result()
	if result.Cancelled {
		return m, nil
	}
	return m, m.applySettings(ctx, result)
}

func (m *Model) applySettings(ctx context.Context, result SettingsFormResult) tea.Cmd {
	before := m.timerService.State()
	untouched := !before.Running && before.RemainingSeconds == before.TotalSeconds

	if _, err := m.timerService.UpdateSettings(ctx, result.Timer); err != nil {
		return m.errorManager.SetError(err)
	}
	if untouched {
		m.timerService.Reset()
		m.timerGen++
	}

	profile, err := m.settingsService.SaveProfile(ctx, result.Profile)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	m.timerService.SetProfile(profile)
	m.monitorService.SetProfile(profile)

	m.notice = "Settings saved"
	return m.loadStats()
}

func (m *Model) loadStats() tea.Cmd {
	stats := m.statsService
	return func() tea.Msg {
		report, err := stats.Report(context.Background(), statsDays)
		return statsLoadedMsg{err: err, report: report}
	}
}

func (m *Model) View() string {
	if m.state == stateSettings && m.settingsDialog != nil {
		return m.settingsDialog.View()
	}

	var sb strings.Builder
	sb.WriteString(renderHeader(m.devMode, ""))
	sb.WriteString("\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.tab {
	case tabActivity:
		sb.WriteString(m.renderActivity())
	case tabStats:
		sb.WriteString(m.renderStats())
	default:
		sb.WriteString(m.renderTimer())
	}

	// Bottom section: error takes priority over the last notice
	sb.WriteString("\n\n")
	if m.errorManager.HasError() {
		sb.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)))
	} else if m.notice != "" {
		sb.WriteString(theme.NoticeStyle.Render(m.notice))
	}
	sb.WriteString("\n")
	sb.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))

	return sb.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		style := theme.TabInactiveStyle
		if tab(i) == m.tab {
			style = theme.TabActiveStyle
		}
		tabs = append(tabs, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderTimer() string {
	state := m.timerService.State()
	color := theme.ModeColor(state.Mode)

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(state.Mode.Label()))
	sb.WriteString("\n")
	sb.WriteString(theme.ClockStyle.Foreground(color).Render(domain.FormatClock(state.RemainingSeconds)))
	sb.WriteString("\n")
	sb.WriteString(m.progress.ViewAs(m.timerService.Progress()))
	sb.WriteString("\n\n")

	status := "Paused"
	if state.Running {
		status = "Running"
	}
	sb.WriteString(labelValue("Status", status))
	sb.WriteString(labelValue("Sessions completed", fmt.Sprintf("%d", state.CompletedSessions)))
	sb.WriteString(labelValue("Long break in", fmt.Sprintf("%d sessions", m.timerService.NextLongBreakIn())))

	if m.reportLoaded {
		sb.WriteString(labelValue("Today", fmt.Sprintf("%d / %d min (%d%%)",
			m.report.Summary.TodayMinutes,
			m.report.StudyGoal,
			analytics.CappedPercent(m.report.GoalProgress))))
	}
	return sb.String()
}

func (m *Model) renderActivity() string {
	var sb strings.Builder

	state := m.monitorService.State()
	if !state.Active {
		sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("Activity monitoring is off. Press %s to start.",
			m.keys.Monitor.Help().Key)))
		sb.WriteString("\n\n")
		if m.reportLoaded && m.report.Summary.HasActivityData {
			sb.WriteString(labelValue("Average focus score", fmt.Sprintf("%d", m.report.Summary.AverageFocusScore)))
			sb.WriteString(labelValue("Total distractions", fmt.Sprintf("%d", m.report.Summary.TotalDistractions)))
		}
		return sb.String()
	}

	status := domain.StatusFor(state.FocusScore)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ScoreColor(status)).Bold(true)
	sb.WriteString(scoreStyle.Render(fmt.Sprintf("Focus score %d (%s)", state.FocusScore, status)))
	sb.WriteString("\n")
	sb.WriteString(m.progress.ViewAs(float64(state.FocusScore) / float64(domain.InitialFocusScore)))
	sb.WriteString("\n\n")

	sb.WriteString(labelValue("Monitoring for", m.monitorService.Elapsed().Truncate(time.Second).String()))
	sb.WriteString(labelValue("Distractions", fmt.Sprintf("%d", state.Distractions)))
	sb.WriteString(labelValue("Activity level", fmt.Sprintf("%d", m.lastSample.Level)))
	sb.WriteString(labelValue("Input this second", fmt.Sprintf("%d moves, %d keys", state.MouseCount, state.KeyCount)))
	return sb.String()
}

func (m *Model) renderStats() string {
	if !m.reportLoaded {
		return theme.MutedStyle.Render("Loading stats...")
	}

	r := m.report
	var sb strings.Builder
	sb.WriteString(labelValue("Streak", fmt.Sprintf("%d days", r.Summary.Streak)))
	sb.WriteString(labelValue("Today", fmt.Sprintf("%d min in %d sessions, %d breaks",
		r.Summary.TodayMinutes, r.Summary.TodaySessions, r.Summary.BreaksToday)))
	sb.WriteString(labelValue("Daily goal", fmt.Sprintf("%d%% of %d min", analytics.CappedPercent(r.GoalProgress), r.StudyGoal)))
	sb.WriteString(labelValue("Total focus", fmt.Sprintf("%d min in %d completed sessions",
		r.Summary.TotalFocusMinutes, r.Summary.CompletedSessions)))
	sb.WriteString(labelValue("Achievements", fmt.Sprintf("%d / %d unlocked", r.Unlocked, len(r.Achievements))))
	sb.WriteString("\n")
	sb.WriteString(RenderDailyChart(r.Daily, r.StudyGoal))

	if m.showHourlyChart {
		sb.WriteString("\n\n")
		sb.WriteString(RenderHourlyChart(r.Hourly))
	}
	return sb.String()
}

func labelValue(label, value string) string {
	return theme.LabelStyle.Render(fmt.Sprintf("%-20s", label)) + theme.ValueStyle.Render(value) + "\n"
}
