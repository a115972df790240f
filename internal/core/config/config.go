package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	WebhookURL  string
	Env         string
	LockTimeout time.Duration
}

// LoadConfig reads the .env file and returns a Config struct.
func LoadConfig() *Config {
	// A missing .env is fine in production; system env vars still apply.
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on system env variables")
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		WebhookURL:  getEnv("WEBHOOK_URL", ""),
		Env:         getEnv("ENV", "development"),
		LockTimeout: getDurationEnv("LOCK_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in env, using fallback", "key", key, "value", value)
		return fallback
	}
	return d
}
