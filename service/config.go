package service

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// maxNewReleaseDays keeps the window well inside time.Duration's range.
const maxNewReleaseDays = 365 * 100

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string
	PublicDir   string
	SiteName    string

	Catalog struct {
		// NewReleaseWindow is how long after release a shoe shows the "Just Released" badge.
		NewReleaseWindow time.Duration
	}

	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/soleshop.db"),
		PublicDir:   getEnv("PUBLIC_DIR", "public"),
		SiteName:    getEnv("SITE_NAME", "Sole Shop"),
	}

	days, err := strconv.Atoi(getEnv("NEW_RELEASE_DAYS", "30"))
	if err != nil || days <= 0 || days > maxNewReleaseDays {
		return nil, fmt.Errorf("NEW_RELEASE_DAYS must be an integer between 1 and %d, got %q",
			maxNewReleaseDays, os.Getenv("NEW_RELEASE_DAYS"))
	}
	config.Catalog.NewReleaseWindow = time.Duration(days) * 24 * time.Hour

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	config.ShutdownTimeout = timeout

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
