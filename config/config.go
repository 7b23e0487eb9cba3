package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultBusyTimeoutMS bounds how long a write waits on the database lock
// before the operation fails with a retryable error.
const DefaultBusyTimeoutMS = 5000

type Config struct {
	DBPath        string
	Environment   string
	BusyTimeoutMS int
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		DBPath:        getEnv("DB_PATH", "db/app.db"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		BusyTimeoutMS: getEnvInt("BUSY_TIMEOUT_MS", DefaultBusyTimeoutMS),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
