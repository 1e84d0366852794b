package ports

import (
	"context"

	"flowstate/internal/domain"
)

// CategoryReader reads opaque category values
type CategoryReader interface {
	// Get returns the stored value, or domain.ErrCategoryNotFound when absent
	Get(ctx context.Context, category domain.Category) ([]byte, error)
	// Keys lists the categories that currently hold a value
	Keys(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter replaces or removes category values
type CategoryWriter interface {
	Put(ctx context.Context, category domain.Category, value []byte) error
	// PutMany replaces several categories atomically: either all are written or none
	PutMany(ctx context.Context, values map[domain.Category][]byte) error
	// Clear removes every category
	Clear(ctx context.Context) error
}

// CategoryStore is the composite interface
type CategoryStore interface {
	CategoryReader
	CategoryWriter
	Close() error
}
