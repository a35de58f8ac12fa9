package config

import (
	"encoding/json"
	"os"

	"github.com/noflow/engine/internal/flagx"
	"github.com/noflow/engine/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for lifetime fields, which
// allows parsing both string values such as "720h" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr              string         `json:"endpoint_addr"`
	DatabaseDriver            string         `json:"database_driver"`
	DatabaseDSN               string         `json:"database_dsn"`
	SessionSecret             string         `json:"session_secret"`
	SessionCookieName         string         `json:"session_cookie_name"`
	PersistentSessionValidity timex.Duration `json:"persistent_session_validity"`
	CORSAllowedOrigins        string         `json:"cors_allowed_origins"`
	ReleaseMode               bool           `json:"release_mode"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config flags; when neither is
// set, no JSON file is loaded. Unreadable or invalid files panic, matching
// the fail-fast startup behavior of the flag layer.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDriver != "" {
		config.DatabaseDriver = c.DatabaseDriver
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SessionSecret != "" {
		config.SessionSecret = c.SessionSecret
	}
	if c.SessionCookieName != "" {
		config.SessionCookieName = c.SessionCookieName
	}
	if c.PersistentSessionValidity.Duration != 0 {
		config.PersistentSessionValidity = c.PersistentSessionValidity.Duration
	}
	if c.CORSAllowedOrigins != "" {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.ReleaseMode {
		config.ReleaseMode = true
	}
}
