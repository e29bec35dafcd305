package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/takeo/dojomaster/internal/pkg/apperrors"
	"github.com/takeo/dojomaster/internal/store"
)

// Storage keys for the four persisted collections.
const (
	KeyUsers    = "users"
	KeyStudents = "students"
	KeyRanks    = "ranks"
	KeyExams    = "exams"
)

// collection wraps one persisted key with typed load/save. Every operation is
// a full-collection read-modify-write; the mutex serializes those sequences
// per collection. A missing key loads as an empty slice: seeding happens at
// bootstrap, not here.
type collection[T any] struct {
	mu    sync.Mutex
	store store.Store
	key   string
}

func newCollection[T any](s store.Store, key string) *collection[T] {
	return &collection[T]{store: s, key: key}
}

// load reads and decodes the full collection without holding the lock. Use
// only from contexts that do not mutate, or from within mutate.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err, fmt.Sprintf("failed to load %s", c.key))
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperrors.NewStorageError(err, fmt.Sprintf("corrupt %s collection", c.key))
	}
	return items, nil
}

// save encodes and persists the full collection.
func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewStorageError(err, fmt.Sprintf("failed to encode %s", c.key))
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return apperrors.NewStorageError(err, fmt.Sprintf("failed to persist %s", c.key))
	}
	return nil
}

// mutate runs fn over the current snapshot under the collection lock and
// persists whatever fn returns.
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, updated)
}
