package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-r", "pgx", "-d", "postgres://db", "-s", "secret",
		"-n", "cookie", "-p", "48", "-o", "https://example.com", "-m",
	}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, "127.0.0.1:9090", config.EndpointAddr)
	assert.Equal(t, "pgx", config.DatabaseDriver)
	assert.Equal(t, "postgres://db", config.DatabaseDSN)
	assert.Equal(t, "secret", config.SessionSecret)
	assert.Equal(t, "cookie", config.SessionCookieName)
	assert.Equal(t, 48*time.Hour, config.PersistentSessionValidity)
	assert.Equal(t, "https://example.com", config.CORSAllowedOrigins)
	assert.True(t, config.ReleaseMode)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":8080", config.EndpointAddr)
	assert.Equal(t, 30*24*time.Hour, config.PersistentSessionValidity)
}
