// Package config handles configuration for the server, including defaults,
// JSON overlay, environment variables, and command-line flags (applied in
// that order).
package config

import "time"

// Config holds runtime settings for the NoFlow Engine server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDriver: "pgx" (PostgreSQL) or "sqlite".
//   - DatabaseDSN: connection string for the selected driver.
//   - SessionSecret: HMAC secret for signing session cookies (HS256).
//     Do not use the test default in prod.
//   - SessionCookieName: name of the session cookie.
//   - PersistentSessionValidity: lifetime of a "remember me" session.
//   - CORSAllowedOrigins: comma-separated list of allowed origins.
//   - ReleaseMode: enables release behavior (secure cookies, quiet router).
type Config struct {
	EndpointAddr              string
	DatabaseDriver            string
	DatabaseDSN               string
	SessionSecret             string
	SessionCookieName         string
	PersistentSessionValidity time.Duration
	CORSAllowedOrigins        string
	ReleaseMode               bool
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:noflow.db"
	c.SessionSecret = "secretKey"
	c.SessionCookieName = "noflow_session"
	c.PersistentSessionValidity = 30 * 24 * time.Hour
	c.CORSAllowedOrigins = "http://localhost:5173"
	c.ReleaseMode = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including an optional .env
// file), and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
