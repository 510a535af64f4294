package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the diary service.
type Config struct {
	DatabaseURL    string
	HTTPAddr       string
	NotifyInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPAddr:       strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		NotifyInterval: parseHours(strings.TrimSpace(os.Getenv("NOTIFY_INTERVAL_HOURS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "diary.db"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	return cfg, nil
}

// parseHours returns 6h when unset, 0 for an explicit "0" (periodic passes
// disabled), and 6h for anything unparsable.
func parseHours(raw string) time.Duration {
	if raw == "" {
		return 6 * time.Hour
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours < 0 {
		return 6 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}
