// Package config assembles the client's runtime settings from layered
// sources: built-in defaults, environment (including a local .env file),
// an optional JSON file, and command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the EventPoster client.
//
// Fields:
//   - APIBaseURL: origin plus /api prefix of the backend REST service.
//   - RequestTimeout: per-call HTTP timeout.
//   - DataDir: directory for the local session database.
//   - WatchInterval: how often the session store polls for out-of-process
//     session changes.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DataDir        string
	WatchInterval  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DataDir = "."
	c.WatchInterval = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
