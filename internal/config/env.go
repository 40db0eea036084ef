package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables. A .env file in the
// working directory is loaded first; real environment variables win over
// .env entries (godotenv never overrides existing values).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("OLYST_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("OLYST_REFERRAL_URL"); v != "" {
		cfg.ReferralBaseURL = v
	}
	if v := os.Getenv("OLYST_REQUEST_TIMEOUT_S"); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 {
			cfg.RequestTimeout = time.Duration(s) * time.Second
		}
	}
	if v := os.Getenv("OLYST_TOKEN_DB"); v != "" {
		cfg.TokenDBPath = v
	}
	if v := os.Getenv("OLYST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
