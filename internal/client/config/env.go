package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is folded in first (existing variables are
// not overridden, matching godotenv's default).
//
// Recognized variables:
//
//	EVENTPOSTER_API_URL          base URL of the backend (origin + /api)
//	EVENTPOSTER_REQUEST_TIMEOUT  per-call timeout, e.g. "10s"
//	EVENTPOSTER_DATA_DIR         directory for the session database
//	EVENTPOSTER_WATCH_INTERVAL   session poll interval, e.g. "2s"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EVENTPOSTER_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("EVENTPOSTER_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("EVENTPOSTER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("EVENTPOSTER_WATCH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.WatchInterval = d
		}
	}
}
