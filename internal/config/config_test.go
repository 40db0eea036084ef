package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000/api", c.APIBaseURL)
	assert.Equal(t, "https://olyst.com", c.ReferralBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "olyst.db", c.TokenDBPath)
	assert.Equal(t, 6, c.FeaturedLimit)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIBaseURL)
	assert.Equal(t, 6, cfg.FeaturedLimit)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("OLYST_API_URL", "https://api.example.test/api")
	t.Setenv("OLYST_REQUEST_TIMEOUT_S", "30")
	t.Setenv("OLYST_LOG_LEVEL", "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.test/api", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseEnv_IgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("OLYST_REQUEST_TIMEOUT_S", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}
