// Package store provides the record store: a generic persistent key to
// JSON-document mapping. The store has no schema awareness; it persists
// whatever collection snapshot it is given. Seeding of missing keys is an
// explicit initialization step handled by the seed package, not by the
// backends themselves.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no document exists under the key.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is a key to JSON-document mapping. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the raw document stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set persists the raw document under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases any resources held by the backend.
	Close() error
}
