// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the admin client.
type Config struct {
	// BaseURL is the backend base URL, e.g. https://api.charmss.example.
	BaseURL string
	// SendEmptyBearer keeps the Authorization header present with an empty
	// token before login, matching the backend contract.
	SendEmptyBearer bool
	// HTTPTimeout bounds each backend call.
	HTTPTimeout time.Duration
	// OAuthProviders lists the providers whose grants are revoked at logout.
	OAuthProviders []string
}

// Load reads configuration from environment variables. A local .env file is
// loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.BaseURL = os.Getenv("CHARMSS_API_BASE_URL")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("CHARMSS_API_BASE_URL is required")
	}

	cfg.SendEmptyBearer = getBoolEnv("CHARMSS_SEND_EMPTY_BEARER", true)

	timeout := getEnvOrDefault("CHARMSS_HTTP_TIMEOUT", "30s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid CHARMSS_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = d

	for _, p := range strings.Split(getEnvOrDefault("CHARMSS_OAUTH_PROVIDERS", "google,twitter"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.OAuthProviders = append(cfg.OAuthProviders, p)
		}
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
