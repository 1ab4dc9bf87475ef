// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// HTTP
	Port int

	// Database
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// Redis
	RedisAddr          string
	PreviewCacheTTLSec int

	// Business rules
	BusinessTimeZone string

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// HTTP
		Port: getEnvInt("PORT", 8080),

		// Database
		DBHost:     getEnv("DB_HOST", getEnv("CREDIT_DB_HOST", "localhost")),
		DBPort:     getEnvInt("DB_PORT", getEnvInt("CREDIT_DB_PORT", 5432)),
		DBName:     getEnv("DB_NAME", getEnv("CREDIT_DB_NAME", "creditplans")),
		DBUser:     getEnv("DB_USER", getEnv("CREDIT_DB_USER", "postgres")),
		DBPassword: getEnv("DB_PASSWORD", getEnv("CREDIT_DB_PASSWORD", "")),

		// Redis
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		PreviewCacheTTLSec: getEnvInt("PREVIEW_CACHE_TTL_SEC", 300),

		// Business rules
		BusinessTimeZone: getEnv("BUSINESS_TZ", "America/Guatemala"),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	sslMode := "require"
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable" // Disable SSL for local development
	}
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + strconv.Itoa(c.DBPort) + "/" + c.DBName + "?sslmode=" + sslMode
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
