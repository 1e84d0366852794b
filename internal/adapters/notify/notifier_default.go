//go:build !darwin && !linux && !windows

package notify

func notificationCommand(title, body string) (string, []string) {
	return "", nil
}
