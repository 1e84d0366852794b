package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flowstate/internal/adapters/storage"
	"flowstate/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func putJSON(t *testing.T, store *storage.MemoryStore, category domain.Category, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), category, data))
}

func getRaw(t *testing.T, store *storage.MemoryStore, category domain.Category) string {
	t.Helper()
	data, err := store.Get(context.Background(), category)
	require.NoError(t, err)
	return string(data)
}
