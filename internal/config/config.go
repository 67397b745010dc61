package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	StorageDriver string
	DataFile      string
	DBConn        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// EncryptionKey is the decoded DATA_ENCRYPTION_KEY; nil disables encryption at rest.
	EncryptionKey []byte

	JWTSecret  string
	TokenTTL   time.Duration
	SingleUser bool

	WeatherProvider string
	WeatherURL      string
	WeatherAPIKey   string
	WeatherCity     string
	WeatherRefresh  string

	Currency string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment values win.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		StorageDriver:   strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
		DataFile:        getEnv("DATA_FILE", "data/unidash.json"),
		DBConn:          getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=unidash sslmode=disable"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		TokenTTL:        time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		SingleUser:      getEnvBool("SINGLE_USER", false),
		WeatherProvider: strings.ToLower(getEnv("WEATHER_PROVIDER", "wttr")),
		WeatherURL:      getEnv("WEATHER_URL", ""),
		WeatherAPIKey:   getEnv("WEATHER_API_KEY", ""),
		WeatherCity:     getEnv("WEATHER_CITY", "Bengaluru"),
		WeatherRefresh:  getEnv("WEATHER_REFRESH", "@every 10m"),
		Currency:        strings.ToUpper(getEnv("CURRENCY", "INR")),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getEnv("SMTP_PORT", "1025"),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SenderEmail:     getEnv("SENDER_EMAIL", "noreply@unidash.local"),
	}

	switch cfg.StorageDriver {
	case DriverFile:
		if cfg.DataFile == "" {
			return nil, fmt.Errorf("DATA_FILE is required for the file driver")
		}
	case DriverPostgres:
		if cfg.DBConn == "" {
			return nil, fmt.Errorf("DB_CONN is required for the postgres driver")
		}
	case DriverRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required for the redis driver")
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if !cfg.SingleUser && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.WeatherProvider {
	case "wttr":
		if cfg.WeatherURL == "" {
			cfg.WeatherURL = "https://wttr.in"
		}
	case "owm":
		if cfg.WeatherURL == "" {
			cfg.WeatherURL = "https://api.openweathermap.org/data/2.5/weather"
		}
		if cfg.WeatherAPIKey == "" {
			return nil, fmt.Errorf("WEATHER_API_KEY is required for the owm provider")
		}
	default:
		return nil, fmt.Errorf("unknown WEATHER_PROVIDER %q", cfg.WeatherProvider)
	}

	if raw := getEnv("DATA_ENCRYPTION_KEY", ""); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("DATA_ENCRYPTION_KEY must be hex encoded: %w", err)
		}
		if len(key) != 16 && len(key) != 24 && len(key) != 32 {
			return nil, fmt.Errorf("DATA_ENCRYPTION_KEY must decode to 16, 24, or 32 bytes, got %d", len(key))
		}
		cfg.EncryptionKey = key
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return parsed
}
