package config

import (
	"os"
	"strconv"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port             string
	SearchAPIBaseURL string
	VendorAPIBaseURL string

	// HistoryBackend selects where the price history blob lives:
	// "postgres", "redis" or "file".
	HistoryBackend string
	HistoryFile    string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load fills AppConfig from the environment, applying defaults for
// everything that can reasonably default.
func Load() {
	AppConfig = Config{
		Port:             getEnv("PORT", "5000"),
		SearchAPIBaseURL: os.Getenv("SEARCH_API_BASE_URL"),
		VendorAPIBaseURL: os.Getenv("VENDOR_API_BASE_URL"),
		HistoryBackend:   getEnv("HISTORY_BACKEND", "file"),
		HistoryFile:      getEnv("HISTORY_FILE", "data/price_history.json"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
