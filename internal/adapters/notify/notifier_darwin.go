//go:build darwin

package notify

import "fmt"

func notificationCommand(title, body string) (string, []string) {
	script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeQuotes(body), escapeQuotes(title))
	return "osascript", []string{"-e", script}
}
