package domain

import "errors"

var (
	ErrCategoryNotFound        = errors.New("category not found")
	ErrCorruptCategory         = errors.New("stored category is not a JSON list")
	ErrInvalidImport           = errors.New("invalid import payload")
	ErrInvalidMode             = errors.New("invalid timer mode")
	ErrMonitoringInactive      = errors.New("activity monitoring is not active")
	ErrNotificationUnavailable = errors.New("desktop notifications unavailable")
	ErrNoActiveBreak           = errors.New("no break is active")
	ErrSessionLocked           = errors.New("another flowstate session is running")
)
