package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "toggle all shortcuts"},
	{Name: "hourly_chart", Defaults: []string{"c"}, Help: "toggle hourly chart"},
	{Name: "quit", Defaults: []string{"q"}, Help: "quit"},
	{Name: "settings", Defaults: []string{"s"}, Help: "edit settings"},

	// Navigation keys
	{Name: "next_tab", Defaults: []string{"tab", "right", "l"}, Help: "next tab"},
	{Name: "prev_tab", Defaults: []string{"shift+tab", "left", "h"}, Help: "previous tab"},

	// Timer keys
	{Name: "focus_mode", Defaults: []string{"1"}, Help: "focus"},
	{Name: "long_break_mode", Defaults: []string{"3"}, Help: "long break"},
	{Name: "reset", Defaults: []string{"r"}, Help: "reset countdown"},
	{Name: "short_break_mode", Defaults: []string{"2"}, Help: "short break"},
	{Name: "switch_mode", Defaults: []string{"m"}, Help: "switch mode"},
	{Name: "toggle", Defaults: []string{"space"}, Help: "start/pause"},

	// Activity and break keys
	{Name: "break_done", Defaults: []string{"b"}, Help: "mark break done"},
	{Name: "monitor", Defaults: []string{"a"}, Help: "start/stop activity monitor"},
}

var (
	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
