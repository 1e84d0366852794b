package ports

// Notifier shows desktop notifications.
// Implementations return domain.ErrNotificationUnavailable when the platform cannot display one.
type Notifier interface {
	Notify(title, body string) error
}
