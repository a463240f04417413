package config

import (
	"errors"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Store backend names accepted by STORE_BACKEND.
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	HTTP     HTTP
	Store    StoreConfig
	Database Database
	Stripe   Stripe
	Logger   Logger
}

// HTTP represents the HTTP server configuration
type HTTP struct {
	Port string
}

// StoreConfig selects the record store backend at startup
type StoreConfig struct {
	Backend string
}

// Database represents the database configuration
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Stripe represents the payment processor configuration. SecretKey and
// WebhookSecret are required process-wide; PublishableKey is consumed by
// the client and its absence only disables the card path.
type Stripe struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
}

// Logger represents the logger configuration
type Logger struct {
	Level      string
	Encoding   string
	OutputPath string
}

// Load loads the configuration from environment variables (a local .env
// file is honored via godotenv). Missing payment processor secrets are a
// fatal startup condition.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTP{
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", StoreBackendMemory),
		},
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "church"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Stripe: Stripe{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
			WebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Logger: Logger{
			Level:      getEnv("LOG_LEVEL", "info"),
			Encoding:   getEnv("LOG_ENCODING", "json"),
			OutputPath: getEnv("LOG_OUTPUT_PATH", "stdout"),
		},
	}

	if cfg.Stripe.SecretKey == "" {
		return Config{}, errors.New("STRIPE_SECRET_KEY is required")
	}
	if cfg.Stripe.WebhookSecret == "" {
		return Config{}, errors.New("STRIPE_WEBHOOK_SECRET is required")
	}
	if cfg.Store.Backend != StoreBackendMemory && cfg.Store.Backend != StoreBackendPostgres {
		return Config{}, errors.New("STORE_BACKEND must be 'memory' or 'postgres'")
	}

	return cfg, nil
}

// getEnv gets an environment variable value or returns the default
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
