package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	// Postgres connection string; empty means no database involved.
	DatabaseURL string
	// Reserved symbol of the money leg in fill records.
	BaseCurrency string
	// Path to a Coinbase Pro account statement export.
	FillsCSV string
	LogLevel string
	// When set, reject order sequences that are not chronological
	// instead of trusting input order.
	StrictOrderCheck bool
}

// Load reads config from a .env file when present, falling back to
// OS environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env file: %v", err)
	}

	return Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		BaseCurrency:     getEnv("BASE_CURRENCY", "USD"),
		FillsCSV:         getEnv("FILLS_CSV", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		StrictOrderCheck: getEnvAsBool("STRICT_ORDER", false),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid boolean for %s: %q, using default %v", key, v, fallback)
		return fallback
	}
	return parsed
}
