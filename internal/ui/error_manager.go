package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the error clear delay. id identifies the error it clears.
type clearErrorMsg struct {
	id int
}

// ErrorManager handles error display and auto-clearing
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	id              int
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error and returns a command that clears it after the delay
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.id++
	if err == nil || em.errorClearDelay <= 0 {
		return nil
	}
	id := em.id
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{id: id}
	})
}

// handleClear clears the error only if no newer error replaced it
func (em *ErrorManager) handleClear(msg clearErrorMsg) {
	if msg.id == em.id {
		em.currentError = nil
	}
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}
