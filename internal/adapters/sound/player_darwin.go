//go:build darwin

package sound

import "flowstate/internal/ports"

// commandsForEvent plays system sounds with afplay
func commandsForEvent(eventType string) []command {
	var files []string
	switch eventType {
	case ports.SoundFocusComplete:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Hero.aiff"}
	case ports.SoundBreakComplete:
		files = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Purr.aiff"}
	case ports.SoundDistraction:
		files = []string{"/System/Library/Sounds/Funk.aiff", "/System/Library/Sounds/Tink.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	cmds := make([]command, 0, len(files))
	for _, f := range files {
		cmds = append(cmds, command{name: "afplay", args: []string{f}})
	}
	return cmds
}
