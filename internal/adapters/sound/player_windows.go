//go:build windows

package sound

import "flowstate/internal/ports"

// commandsForEvent plays system sounds through PowerShell
func commandsForEvent(eventType string) []command {
	var sounds []string
	switch eventType {
	case ports.SoundFocusComplete:
		sounds = []string{"Asterisk", "Beep"}
	case ports.SoundBreakComplete:
		sounds = []string{"Question", "Beep"}
	case ports.SoundDistraction:
		sounds = []string{"Exclamation", "Beep"}
	default:
		sounds = []string{"Beep"}
	}

	cmds := make([]command, 0, len(sounds))
	for _, s := range sounds {
		cmds = append(cmds, command{
			name: "powershell",
			args: []string{"-c", "[System.Media.SystemSounds]::" + s + ".Play()"},
		})
	}
	return cmds
}
