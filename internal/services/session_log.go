package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ports"
)

// SessionLog is the typed, append-only view over the record categories.
// Each append is a read-modify-write of the whole list under that category's mutex.
type SessionLog struct {
	locks map[domain.Category]*sync.Mutex
	store ports.CategoryStore
}

// NewSessionLog creates a new SessionLog
func NewSessionLog(store ports.CategoryStore) *SessionLog {
	return &SessionLog{
		locks: map[domain.Category]*sync.Mutex{
			domain.CategoryFocusSessions:    {},
			domain.CategoryActivitySessions: {},
			domain.CategoryBreakHistory:     {},
		},
		store: store,
	}
}

// AppendFocusSession appends one focus record
func (l *SessionLog) AppendFocusSession(ctx context.Context, record domain.FocusSessionRecord) error {
	return appendRecord(ctx, l, domain.CategoryFocusSessions, record)
}

// AppendActivitySession appends one monitoring window summary
func (l *SessionLog) AppendActivitySession(ctx context.Context, record domain.ActivitySessionRecord) error {
	return appendRecord(ctx, l, domain.CategoryActivitySessions, record)
}

// AppendBreak appends one completed break
func (l *SessionLog) AppendBreak(ctx context.Context, record domain.BreakRecord) error {
	return appendRecord(ctx, l, domain.CategoryBreakHistory, record)
}

// FocusSessions returns every focus record in append order
func (l *SessionLog) FocusSessions(ctx context.Context) ([]domain.FocusSessionRecord, error) {
	return loadList[domain.FocusSessionRecord](ctx, l.store, domain.CategoryFocusSessions)
}

// ActivitySessions returns every activity record in append order
func (l *SessionLog) ActivitySessions(ctx context.Context) ([]domain.ActivitySessionRecord, error) {
	return loadList[domain.ActivitySessionRecord](ctx, l.store, domain.CategoryActivitySessions)
}

// Breaks returns every break record in append order
func (l *SessionLog) Breaks(ctx context.Context) ([]domain.BreakRecord, error) {
	return loadList[domain.BreakRecord](ctx, l.store, domain.CategoryBreakHistory)
}

// Snapshot loads the three record categories concurrently
func (l *SessionLog) Snapshot(ctx context.Context) (domain.LogSnapshot, error) {
	var snap domain.LogSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := l.FocusSessions(gctx)
		snap.FocusSessions = records
		return err
	})
	g.Go(func() error {
		records, err := l.ActivitySessions(gctx)
		snap.ActivitySessions = records
		return err
	})
	g.Go(func() error {
		records, err := l.Breaks(gctx)
		snap.Breaks = records
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.LogSnapshot{}, fmt.Errorf("failed to load session log: %w", err)
	}
	return snap, nil
}

func appendRecord[T any](ctx context.Context, l *SessionLog, category domain.Category, record T) error {
	mu := l.locks[category]
	mu.Lock()
	defer mu.Unlock()

	elements, err := loadRaw(ctx, l.store, category)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptCategory) {
			logging.Logger.Error("Refusing to append to corrupt category", "category", category, "error", err)
		}
		return err
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", category, err)
	}
	elements = append(elements, encoded)

	data, err := json.Marshal(elements)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", category, err)
	}
	if err := l.store.Put(ctx, category, data); err != nil {
		logging.Logger.Error("Failed to append record", "category", category, "error", err)
		return fmt.Errorf("failed to append to %s: %w", category, err)
	}

	logging.Logger.Debug("Record appended", "category", category, "count", len(elements))
	return nil
}

// loadRaw reads a JSON array category as its undecoded elements. A missing value
// or null is an empty list; a value that is not a JSON array is ErrCorruptCategory.
func loadRaw(ctx context.Context, store ports.CategoryReader, category domain.Category) ([]json.RawMessage, error) {
	data, err := store.Get(ctx, category)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", category, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptCategory, category, err)
	}
	if elements == nil {
		elements = []json.RawMessage{}
	}
	return elements, nil
}

// loadList reads a JSON array category. A value that is not an array reads as
// empty and elements that do not decode are skipped; only store failures are returned.
func loadList[T any](ctx context.Context, store ports.CategoryReader, category domain.Category) ([]T, error) {
	elements, err := loadRaw(ctx, store, category)
	if errors.Is(err, domain.ErrCorruptCategory) {
		logging.Logger.Warn("Corrupt category, treating as empty", "category", category, "error", err)
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(elements))
	for i, raw := range elements {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			logging.Logger.Warn("Skipping undecodable record", "category", category, "index", i, "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// loadObject reads a JSON object category into a value prepared with defaults.
// A missing or corrupt value leaves the defaults in place.
func loadObject[T any](ctx context.Context, store ports.CategoryReader, category domain.Category, defaults T) (T, error) {
	data, err := store.Get(ctx, category)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("failed to read %s: %w", category, err)
	}

	value := defaults
	if err := json.Unmarshal(data, &value); err != nil {
		logging.Logger.Warn("Corrupt category, using defaults", "category", category, "error", err)
		return defaults, nil
	}
	return value, nil
}
