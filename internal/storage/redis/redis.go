// Package redis implements storage.Store on a Redis database.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/unidash/internal/storage"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultPrefix = "unidash:"

// Store keeps every dashboard key under a common Redis key prefix.
type Store struct {
	client *goredis.Client
	log    *logrus.Logger
	prefix string
}

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, addr, password string, db int, log *logrus.Logger) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return New(client, log), nil
}

// New wraps an existing client.
func New(client *goredis.Client, log *logrus.Logger) *Store {
	return &Store{client: client, log: log, prefix: defaultPrefix}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return storage.ErrNoKey
	}
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
