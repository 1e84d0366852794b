//go:build linux

package notify

func notificationCommand(title, body string) (string, []string) {
	return "notify-send", []string{"--app-name=FlowState", title, body}
}
