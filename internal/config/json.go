package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jolidon/olyst/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// expressed in whole seconds so config files stay plain numbers.
type jsonConfig struct {
	APIBaseURL      string `json:"api_base_url"`
	ReferralBaseURL string `json:"referral_base_url"`
	RequestTimeoutS int    `json:"request_timeout_s"`
	TokenDBPath     string `json:"token_db_path"`
	FeaturedLimit   int    `json:"featured_limit"`
	LogLevel        string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// No flag means no JSON stage. Only fields present in the file override.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.ReferralBaseURL != "" {
		cfg.ReferralBaseURL = jc.ReferralBaseURL
	}
	if jc.RequestTimeoutS > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutS) * time.Second
	}
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.FeaturedLimit > 0 {
		cfg.FeaturedLimit = jc.FeaturedLimit
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
