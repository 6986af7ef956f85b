package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    string
	FrontendURL string
	// Storage backend: "memory", "redis" or "postgres"
	StorageBackend string
	DBUrl          string
	RedisURL       string
	RedisPassword  string
	// Demo session configuration
	SessionSecret   string
	SessionDuration time.Duration
	// Seed the store with demo data when collections are absent
	SeedData bool
	// Interval for the unread-counter broadcaster
	CounterInterval time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		FrontendURL:     strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		StorageBackend:  getEnv("STORAGE_BACKEND", "memory"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		SessionSecret:   getEnv("SESSION_SECRET", "glint-demo-secret"),
		SessionDuration: time.Duration(getEnvInt("SESSION_DURATION_HOURS", 72)) * time.Hour,
		SeedData:        getEnvBool("SEED_DATA", true),
		CounterInterval: time.Duration(getEnvInt("COUNTER_INTERVAL_SECONDS", 3)) * time.Second,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
