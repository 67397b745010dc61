// Package app wires configuration into the concrete stores and clients shared
// by the server and the command line tool.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/Dan9191/unidash/internal/config"
	"github.com/Dan9191/unidash/internal/integrations/weather"
	"github.com/Dan9191/unidash/internal/storage"
	"github.com/Dan9191/unidash/internal/storage/postgres"
	"github.com/Dan9191/unidash/internal/storage/redis"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a JSON logger at level, falling back to Info.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// OpenStore opens the backend named by cfg.StorageDriver, wrapped in
// encryption when a key is configured.
func OpenStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)
	switch cfg.StorageDriver {
	case config.DriverFile:
		store, err = storage.NewFileStore(cfg.DataFile)
	case config.DriverPostgres:
		store, err = postgres.Open(ctx, cfg.DBConn, log)
	case config.DriverRedis:
		store, err = redis.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	case config.DriverMemory:
		store = storage.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StorageDriver, err)
	}
	log.Infof("Using %s storage", cfg.StorageDriver)

	if cfg.EncryptionKey != nil {
		log.Info("Encryption at rest enabled")
		return storage.NewEncryptedStore(store, cfg.EncryptionKey), nil
	}
	return store, nil
}

// NewWeatherProvider returns the client for cfg.WeatherProvider.
func NewWeatherProvider(cfg *config.Config, log *logrus.Logger) (weather.Provider, error) {
	switch cfg.WeatherProvider {
	case "wttr":
		return weather.NewWttrClient(cfg.WeatherURL, log), nil
	case "owm":
		return weather.NewOWMClient(cfg.WeatherURL, cfg.WeatherAPIKey, log), nil
	default:
		return nil, fmt.Errorf("unknown weather provider %q", cfg.WeatherProvider)
	}
}
