//go:build windows

package notify

import "fmt"

func notificationCommand(title, body string) (string, []string) {
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms;`+
		`$n = New-Object System.Windows.Forms.NotifyIcon;`+
		`$n.Icon = [System.Drawing.SystemIcons]::Information;`+
		`$n.Visible = $true;`+
		`$n.ShowBalloonTip(5000, "%s", "%s", 'Info')`, escapeQuotes(title), escapeQuotes(body))
	return "powershell", []string{"-NoProfile", "-c", script}
}
