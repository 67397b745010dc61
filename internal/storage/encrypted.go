package storage

import (
	"context"
	"fmt"

	"github.com/Dan9191/unidash/internal/utils"
)

// EncryptedStore encrypts values before they reach the wrapped store. Keys stay
// in clear text and are bound to their value as authenticated data, so a value
// copied under another key fails to decrypt.
type EncryptedStore struct {
	inner Store
	key   []byte
}

// NewEncryptedStore wraps inner with AES-GCM encryption under key.
func NewEncryptedStore(inner Store, key []byte) *EncryptedStore {
	return &EncryptedStore{inner: inner, key: key}
}

// Get returns the decrypted value. A value that fails to decrypt is handed back
// as-is so the shim treats it as malformed data.
func (e *EncryptedStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := e.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plain, err := utils.Decrypt(string(raw), e.key, []byte(key))
	if err != nil {
		return raw, nil
	}
	return plain, nil
}

func (e *EncryptedStore) Set(ctx context.Context, key string, value []byte) error {
	if len(value) == 0 {
		return e.inner.Set(ctx, key, value)
	}
	sealed, err := utils.Encrypt(value, e.key, []byte(key))
	if err != nil {
		return fmt.Errorf("encrypt value: %w", err)
	}
	return e.inner.Set(ctx, key, []byte(sealed))
}

func (e *EncryptedStore) Delete(ctx context.Context, key string) error {
	return e.inner.Delete(ctx, key)
}

func (e *EncryptedStore) Close() error {
	return e.inner.Close()
}
