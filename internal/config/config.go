package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabasePath string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Ingestion settings
	IngestTimeout   time.Duration
	WorkerPoolSize  int
	BatchMaxSize    int
	DefaultTenant   string
	MaxPayloadBytes int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/court_records.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		DefaultTenant: getEnv("DEFAULT_TENANT", "default"),
	}

	// Parse integer values
	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	ingestTimeout, err := strconv.Atoi(getEnv("INGEST_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid INGEST_TIMEOUT: %w", err)
	}
	cfg.IngestTimeout = time.Duration(ingestTimeout) * time.Second

	cfg.WorkerPoolSize, err = strconv.Atoi(getEnv("WORKER_POOL_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKER_POOL_SIZE: %w", err)
	}
	if cfg.WorkerPoolSize < 1 {
		return nil, fmt.Errorf("invalid WORKER_POOL_SIZE: must be at least 1, got %d", cfg.WorkerPoolSize)
	}

	cfg.BatchMaxSize, err = strconv.Atoi(getEnv("BATCH_MAX_SIZE", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_MAX_SIZE: %w", err)
	}
	if cfg.BatchMaxSize < 1 {
		return nil, fmt.Errorf("invalid BATCH_MAX_SIZE: must be at least 1, got %d", cfg.BatchMaxSize)
	}

	cfg.MaxPayloadBytes, err = strconv.ParseInt(getEnv("MAX_PAYLOAD_BYTES", "5242880"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_PAYLOAD_BYTES: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
