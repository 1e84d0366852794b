//go:build !darwin && !linux && !windows

package sound

// commandsForEvent has nothing to offer; the player rings the bell
func commandsForEvent(eventType string) []command {
	return nil
}
