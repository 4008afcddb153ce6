// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	Reminder ReminderConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds the on-device SQLite configuration.
type DatabaseConfig struct {
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig holds Redis configuration for reminder de-duplication.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// GeminiConfig holds configuration for the logo/advice lookup service.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ReminderConfig holds reminder worker and notification delivery configuration.
type ReminderConfig struct {
	WorkerEnabled  bool
	PollInterval   time.Duration
	DedupTTL       time.Duration
	ResendAPIKey   string
	FromName       string
	FromEmail      string
	RecipientEmail string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Path:         getEnv("DATABASE_PATH", "subtracker.db"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		},
		Reminder: ReminderConfig{
			WorkerEnabled:  getEnvAsBool("REMINDER_WORKER_ENABLED", true),
			PollInterval:   getEnvAsDuration("REMINDER_POLL_INTERVAL", 1*time.Hour),
			DedupTTL:       getEnvAsDuration("REMINDER_DEDUP_TTL", 48*time.Hour),
			ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
			FromName:       getEnv("RESEND_FROM_NAME", "SubTracker"),
			FromEmail:      getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			RecipientEmail: getEnv("REMINDER_RECIPIENT_EMAIL", ""),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
