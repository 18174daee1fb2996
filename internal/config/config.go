package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the walet API.
type Config struct {
	AppName       string
	Port          string
	Env           string
	CORSOrigins   string
	HashPasswords bool
	DB            DBConfig
	Redis         RedisConfig
}

// DBConfig holds database connection and pool settings.
type DBConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RedisConfig holds the second-level cache settings.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// LoadEnv loads variables from a .env file if present.
// It reports whether a file was found.
func LoadEnv() bool {
	return godotenv.Load() == nil
}

// Load builds a Config from the environment.
func Load() Config {
	return Config{
		AppName:       GetEnv("APP_NAME", "waletApi"),
		Port:          GetEnv("PORT", "8080"),
		Env:           GetEnv("ENV", "development"),
		CORSOrigins:   GetEnv("CORS_ORIGINS", "http://localhost:9000"),
		HashPasswords: GetBoolEnv("WALET_HASH_PASSWORDS", false),
		DB: DBConfig{
			Driver:          strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "waletApi"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			DSN:             GetEnv("DB_DSN", "walet.db"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:  GetBoolEnv("REDIS_ENABLED", false),
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
			TTL:      GetDurationEnv("CACHE_TTL", time.Hour),
		},
	}
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
