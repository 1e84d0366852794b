package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"flowstate/internal/logging"
	"flowstate/internal/ports"
)

// command is one way of playing a sound on the current platform
type command struct {
	name string
	args []string
}

// Player implements ports.SoundPlayer
type Player struct {
	bell io.Writer
	run  func(name string, args ...string) error
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{
		bell: os.Stdout,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// PlaySoundForEvent tries each platform command for the event and rings
// the terminal bell when none of them works.
// Platform command tables are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	for _, c := range commandsForEvent(eventType) {
		err := p.run(c.name, c.args...)
		if err == nil {
			return nil
		}
		logging.Logger.Debug("sound command failed", "command", c.name, "event", eventType, "error", err)
	}
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
