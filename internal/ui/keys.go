package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"flowstate/internal/config"
)

// KeyMap contains all keyboard shortcuts of the dashboard
type KeyMap struct {
	BreakDone      key.Binding
	FocusMode      key.Binding
	ForceQuit      key.Binding
	Help           key.Binding
	HourlyChart    key.Binding
	LongBreakMode  key.Binding
	Monitor        key.Binding
	NextTab        key.Binding
	PrevTab        key.Binding
	Quit           key.Binding
	Reset          key.Binding
	Settings       key.Binding
	ShortBreakMode key.Binding
	SwitchMode     key.Binding
	Toggle         key.Binding
}

// NewKeyMap creates a KeyMap, applying any custom bindings over the defaults.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	return KeyMap{
		BreakDone:      buildBinding("break_done", keysConfig),
		FocusMode:      buildBinding("focus_mode", keysConfig),
		ForceQuit:      buildBinding("force_quit", keysConfig),
		Help:           buildBinding("help", keysConfig),
		HourlyChart:    buildBinding("hourly_chart", keysConfig),
		LongBreakMode:  buildBinding("long_break_mode", keysConfig),
		Monitor:        buildBinding("monitor", keysConfig),
		NextTab:        buildBinding("next_tab", keysConfig),
		PrevTab:        buildBinding("prev_tab", keysConfig),
		Quit:           buildBinding("quit", keysConfig),
		Reset:          buildBinding("reset", keysConfig),
		Settings:       buildBinding("settings", keysConfig),
		ShortBreakMode: buildBinding("short_break_mode", keysConfig),
		SwitchMode:     buildBinding("switch_mode", keysConfig),
		Toggle:         buildBinding("toggle", keysConfig),
	}
}

// buildBinding creates a binding from its definition, using custom keys if provided
func buildBinding(name string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := def.Defaults
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(teaKeys(keys)...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

// teaKeys adds the literal " " bubbletea reports for the space bar next to the "space" alias
func teaKeys(keys []string) []string {
	out := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		if k == "space" {
			out = append(out, " ")
		}
		out = append(out, k)
	}
	return out
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Monitor, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.SwitchMode},
		{k.FocusMode, k.ShortBreakMode, k.LongBreakMode},
		{k.Monitor, k.BreakDone, k.HourlyChart},
		{k.NextTab, k.PrevTab, k.Settings},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
