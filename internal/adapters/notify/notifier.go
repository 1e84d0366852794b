// Package notify shows desktop notifications through the platform's own tooling.
package notify

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ports"
)

// DesktopNotifier implements ports.Notifier
type DesktopNotifier struct {
	lookPath func(file string) (string, error)
	run      func(name string, args ...string) error
}

var _ ports.Notifier = (*DesktopNotifier)(nil)

// NewDesktopNotifier creates a notifier backed by the platform command
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{
		lookPath: exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Notify shows title and body. Missing tools and command failures map to
// domain.ErrNotificationUnavailable.
func (n *DesktopNotifier) Notify(title, body string) error {
	name, args := notificationCommand(title, body)
	if name == "" {
		return domain.ErrNotificationUnavailable
	}

	if _, err := n.lookPath(name); err != nil {
		logging.Logger.Debug("notification tool not found", "tool", name)
		return fmt.Errorf("%w: %s not found", domain.ErrNotificationUnavailable, name)
	}

	if err := n.run(name, args...); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logging.Logger.Debug("notification command failed", "tool", name, "exit_code", exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %v", domain.ErrNotificationUnavailable, err)
	}
	return nil
}

// NopNotifier drops every notification
type NopNotifier struct{}

func (NopNotifier) Notify(title, body string) error { return nil }

// escapeQuotes escapes double quotes for AppleScript and PowerShell strings
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
