package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("CHARMSS_API_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("want error when CHARMSS_API_BASE_URL is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHARMSS_API_BASE_URL", "https://api.charmss.test")
	t.Setenv("CHARMSS_SEND_EMPTY_BEARER", "")
	t.Setenv("CHARMSS_HTTP_TIMEOUT", "")
	t.Setenv("CHARMSS_OAUTH_PROVIDERS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://api.charmss.test" {
		t.Fatalf("baseURL: %q", cfg.BaseURL)
	}
	if !cfg.SendEmptyBearer {
		t.Fatalf("SendEmptyBearer must default to true")
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("timeout: %v", cfg.HTTPTimeout)
	}
	if len(cfg.OAuthProviders) != 2 || cfg.OAuthProviders[0] != "google" || cfg.OAuthProviders[1] != "twitter" {
		t.Fatalf("providers: %v", cfg.OAuthProviders)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHARMSS_API_BASE_URL", "https://api.charmss.test")
	t.Setenv("CHARMSS_SEND_EMPTY_BEARER", "false")
	t.Setenv("CHARMSS_HTTP_TIMEOUT", "5s")
	t.Setenv("CHARMSS_OAUTH_PROVIDERS", "google, apple ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SendEmptyBearer {
		t.Fatalf("SendEmptyBearer override failed")
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("timeout: %v", cfg.HTTPTimeout)
	}
	if len(cfg.OAuthProviders) != 2 || cfg.OAuthProviders[1] != "apple" {
		t.Fatalf("providers: %v", cfg.OAuthProviders)
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	t.Setenv("CHARMSS_API_BASE_URL", "https://api.charmss.test")
	t.Setenv("CHARMSS_HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("want error on unparseable timeout")
	}
}
