package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowstate/internal/domain"
	"flowstate/internal/ports"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "flowstate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func storeFactories() map[string]func(t *testing.T) ports.CategoryStore {
	return map[string]func(t *testing.T) ports.CategoryStore{
		"sqlite": func(t *testing.T) ports.CategoryStore { return newSQLiteStore(t) },
		"memory": func(t *testing.T) ports.CategoryStore { return NewMemoryStore() },
	}
}

func TestStore_GetMissingCategory(t *testing.T) {
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			store := factory(t)

			_, err := store.Get(context.Background(), domain.CategoryFocusSessions)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
		})
	}
}

func TestStore_PutReplacesValue(t *testing.T) {
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)

			require.NoError(t, store.Put(ctx, domain.CategoryTimerSettings, []byte(`{"focusDuration":25}`)))
			require.NoError(t, store.Put(ctx, domain.CategoryTimerSettings, []byte(`{"focusDuration":50}`)))

			got, err := store.Get(ctx, domain.CategoryTimerSettings)
			require.NoError(t, err)
			assert.JSONEq(t, `{"focusDuration":50}`, string(got))

			keys, err := store.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []domain.Category{domain.CategoryTimerSettings}, keys)
		})
	}
}

func TestStore_PutManyAndKeys(t *testing.T) {
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)

			err := store.PutMany(ctx, map[domain.Category][]byte{
				domain.CategoryFocusSessions: []byte(`[]`),
				domain.CategoryBreakHistory:  []byte(`[{"timestamp":1,"type":"short"}]`),
				domain.CategoryUserProfile:   []byte(`{"name":"Ada"}`),
			})
			require.NoError(t, err)

			keys, err := store.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []domain.Category{
				domain.CategoryBreakHistory,
				domain.CategoryFocusSessions,
				domain.CategoryUserProfile,
			}, keys)

			got, err := store.Get(ctx, domain.CategoryUserProfile)
			require.NoError(t, err)
			assert.Equal(t, `{"name":"Ada"}`, string(got))
		})
	}
}

func TestStore_Clear(t *testing.T) {
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)

			require.NoError(t, store.Put(ctx, domain.CategoryFocusSessions, []byte(`[]`)))
			require.NoError(t, store.Put(ctx, domain.CategoryUserProfile, []byte(`{}`)))
			require.NoError(t, store.Clear(ctx))

			keys, err := store.Keys(ctx)
			require.NoError(t, err)
			assert.Empty(t, keys)

			// Clearing an empty store is fine
			require.NoError(t, store.Clear(ctx))
		})
	}
}

func TestStore_ValueIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte(`[1]`)
	require.NoError(t, store.Put(ctx, domain.CategoryFocusSessions, value))
	value[1] = '2'

	got, err := store.Get(ctx, domain.CategoryFocusSessions)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "flowstate.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, domain.CategoryFocusSessions, []byte(`[{"date":"2026-03-10T09:00:00Z","duration":25,"completed":true}]`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, domain.CategoryFocusSessions)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"duration":25`)
}

func TestSQLiteStore_ForHome(t *testing.T) {
	home := t.TempDir()

	store, err := NewSQLiteStoreForHome(home)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(home, "flowstate.db"))
}

func TestSQLiteStore_ConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	categories := domain.AllCategories()
	var wg sync.WaitGroup
	for _, c := range categories {
		wg.Add(1)
		go func(c domain.Category) {
			defer wg.Done()
			assert.NoError(t, store.Put(ctx, c, []byte(`"`+string(c)+`"`)))
		}(c)
	}
	wg.Wait()

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, len(categories))
}

func TestWithRetry(t *testing.T) {
	t.Run("returns nil on success", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return nil
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return assert.AnError
		}, 3)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})
}
