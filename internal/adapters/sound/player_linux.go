//go:build linux

package sound

import "flowstate/internal/ports"

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// commandsForEvent prefers PulseAudio and falls back to ALSA
func commandsForEvent(eventType string) []command {
	var name string
	switch eventType {
	case ports.SoundFocusComplete:
		name = "complete"
	case ports.SoundBreakComplete:
		name = "service-login"
	case ports.SoundDistraction:
		name = "dialog-warning"
	default:
		name = "bell"
	}

	return []command{
		{name: "paplay", args: []string{freedesktopSounds + name + ".oga"}},
		{name: "aplay", args: []string{freedesktopSounds + name + ".wav"}},
		{name: "paplay", args: []string{freedesktopSounds + "bell.oga"}},
	}
}
