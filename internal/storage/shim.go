package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Shim wraps a Store with JSON encoding.
type Shim struct {
	store Store
	log   *logrus.Logger
}

// NewShim initializes a new shim over store
func NewShim(store Store, log *logrus.Logger) *Shim {
	return &Shim{store: store, log: log}
}

// Load decodes the value stored under key. It returns def when the key is
// empty or absent, when the store cannot be read, or when the stored bytes do
// not decode as T. None of those cases are reported to the caller.
func Load[T any](ctx context.Context, s *Shim, key string, def T) T {
	if key == "" {
		return def
	}
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warnf("Failed to read %s, using default: %v", key, err)
		}
		return def
	}
	if len(raw) == 0 {
		return def
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.log.Warnf("Malformed data under %s, using default: %v", key, err)
		return def
	}
	return value
}

// Save encodes value and writes it under key.
func Save[T any](ctx context.Context, s *Shim, key string, value T) error {
	if key == "" {
		return ErrNoKey
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *Shim) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrNoKey
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
