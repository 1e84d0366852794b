// Package lock keeps two interactive timers from sharing one FLOWSTATE_HOME.
package lock

import (
	"fmt"
	"os"
	"path/filepath"

	"flowstate/internal/domain"
	"flowstate/internal/logging"
)

// FileLock is an exclusive, non-blocking lock on a file
type FileLock struct {
	file *os.File
	path string
}

// Acquire locks path, creating it if needed.
// It returns domain.ErrSessionLocked when another process holds the lock.
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		_ = file.Close()
		if isContention(err) {
			return nil, domain.ErrSessionLocked
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	if err := file.Truncate(0); err == nil {
		_, _ = fmt.Fprintf(file, "%d\n", os.Getpid())
	}

	logging.Logger.Debug("session lock acquired", "path", path)
	return &FileLock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil

	logging.Logger.Debug("session lock released", "path", l.path)
	if unlockErr != nil {
		return fmt.Errorf("failed to unlock: %w", unlockErr)
	}
	return closeErr
}
