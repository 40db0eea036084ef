// Package config assembles the runtime settings for the Olyst CLI.
// Sources are layered: defaults, then a JSON file (-c/-config), then the
// environment (including a .env file), then command-line flags. Later
// sources take precedence.
package config

import "time"

// Config holds runtime settings for the Olyst CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - ReferralBaseURL: public site URL referral links are composed against.
//   - RequestTimeout: per-request bound imposed on the HTTP transport.
//   - TokenDBPath: SQLite file persisting the session token.
//   - FeaturedLimit: number of products highlighted on the home view.
//   - LogLevel: zerolog level name (debug, info, warn, error).
type Config struct {
	APIBaseURL      string
	ReferralBaseURL string
	RequestTimeout  time.Duration
	TokenDBPath     string
	FeaturedLimit   int
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.ReferralBaseURL = "https://olyst.com"
	c.RequestTimeout = 10 * time.Second
	c.TokenDBPath = "olyst.db"
	c.FeaturedLimit = 6
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
