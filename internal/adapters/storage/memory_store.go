package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"flowstate/internal/domain"
	"flowstate/internal/ports"
)

// MemoryStore is a volatile ports.CategoryStore used by `focus --no-save` and tests
type MemoryStore struct {
	mu     sync.RWMutex
	values map[domain.Category][]byte
}

var _ ports.CategoryStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[domain.Category][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, category domain.Category) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, category)
	}
	return slices.Clone(value), nil
}

func (m *MemoryStore) Keys(ctx context.Context) ([]domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]domain.Category, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *MemoryStore) Put(ctx context.Context, category domain.Category, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[category] = slices.Clone(value)
	return nil
}

func (m *MemoryStore) PutMany(ctx context.Context, values map[domain.Category][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range values {
		m.values[k] = slices.Clone(v)
	}
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.values)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
