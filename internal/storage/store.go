// Package storage is the key-value persistence layer of the dashboard. Values
// are opaque bytes at the Store level; Shim adds JSON encoding with
// default-value synthesis on top.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Store.Get when the key is absent.
	ErrNotFound = errors.New("storage: key not found")
	// ErrNoKey is returned when a write targets an empty key, which happens when
	// a per-user key is built without an identity.
	ErrNoKey = errors.New("storage: empty key")
)

// Store is a flat key-value store. Writes of a single key are atomic.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
