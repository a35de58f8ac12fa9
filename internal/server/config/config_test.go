package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "file:noflow.db", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SessionSecret)
	assert.Equal(t, "noflow_session", c.SessionCookieName)
	assert.Equal(t, 30*24*time.Hour, c.PersistentSessionValidity)
	assert.Equal(t, "http://localhost:5173", c.CORSAllowedOrigins)
	assert.False(t, c.ReleaseMode)
}
