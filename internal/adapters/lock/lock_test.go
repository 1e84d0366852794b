//go:build unix

package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowstate/internal/domain"
)

func TestAcquire_WritesPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home", "flowstate.lock")

	l, err := Acquire(path)
	require.NoError(t, err)
	defer l.Release()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}

func TestAcquire_SecondHolderIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowstate.lock")

	first, err := Acquire(path)
	require.NoError(t, err)

	// flock locks belong to the open file description, so a second
	// open in the same process still contends
	_, err = Acquire(path)
	assert.ErrorIs(t, err, domain.ErrSessionLocked)

	require.NoError(t, first.Release())

	again, err := Acquire(path)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestRelease_Idempotent(t *testing.T) {
	l, err := Acquire(filepath.Join(t.TempDir(), "flowstate.lock"))
	require.NoError(t, err)

	assert.NoError(t, l.Release())
	assert.NoError(t, l.Release())

	var nilLock *FileLock
	assert.NoError(t, nilLock.Release())
}
