package assistant

import (
	"os"
	"strconv"
)

// Config holds all configuration for the external planning collaborators.
type Config struct {
	// Endpoint receives plan chat messages.
	Endpoint string
	// EstimateEndpoint is the optional external budget estimate service.
	// Empty means estimates are derived locally from decision modules.
	EstimateEndpoint string
	TimeoutMs        int
	MaxRetries       int
	LogCalls         bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:         "http://localhost:5001/api/plan-message",
		EstimateEndpoint: "",
		TimeoutMs:        30000,
		MaxRetries:       1,
		LogCalls:         false,
	}
}

// LoadConfig reads collaborator configuration from environment variables,
// falling back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PLANPILOT_ASSISTANT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PLANPILOT_ESTIMATE_ENDPOINT"); v != "" {
		cfg.EstimateEndpoint = v
	}
	if v := os.Getenv("PLANPILOT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PLANPILOT_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("PLANPILOT_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
