package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/eventposter/internal/flagx"
	"github.com/dmitrijs2005/eventposter/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be spelled either as strings like "10s"
// or as integer nanoseconds. Parsed values are copied into the runtime
// Config.
type jsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DataDir        *string         `json:"data_dir"`
	WatchInterval  *timex.Duration `json:"watch_interval"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. If no file is named, nothing happens. Fields absent
// from the file keep their current values. Panics on read or unmarshal
// errors; a broken config file should stop the program at startup.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.WatchInterval != nil {
		cfg.WatchInterval = jc.WatchInterval.Duration
	}
}
