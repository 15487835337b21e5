package config

import (
	"strings"
	"testing"
	"time"
)

func validTestConfig() *Config {
	return &Config{
		OAuth: OAuthConfig{
			ProviderURL: "https://hn.simplerauth.com",
			ClientID:    "news.gcombinator.com",
			RedirectURI: "https://news.gcombinator.com/callback",
		},
	}
}

func TestValidateOAuthConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
		errMsg    string
	}{
		{
			name:      "valid oauth config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name: "missing client id",
			mutate: func(c *Config) {
				c.OAuth.ClientID = ""
			},
			wantError: true,
			errMsg:    "client id is required",
		},
		{
			name: "missing provider url",
			mutate: func(c *Config) {
				c.OAuth.ProviderURL = ""
			},
			wantError: true,
			errMsg:    "provider_url is required",
		},
		{
			name: "provider url without scheme",
			mutate: func(c *Config) {
				c.OAuth.ProviderURL = "hn.simplerauth.com"
			},
			wantError: true,
			errMsg:    "must have http or https scheme",
		},
		{
			name: "missing redirect url",
			mutate: func(c *Config) {
				c.OAuth.RedirectURI = ""
			},
			wantError: true,
			errMsg:    "redirect_url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.validateOAuthConfig()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateConfigAppliesDefaults(t *testing.T) {
	cfg := validTestConfig()

	if err := validateConfig(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != DefaultServerConfig.Port {
		t.Errorf("expected default port %d, got %d", DefaultServerConfig.Port, cfg.Server.Port)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("expected default log config, got level=%s format=%s", cfg.Log.Level, cfg.Log.Format)
	}

	if cfg.Sessions.CookieName != "access_token" {
		t.Errorf("expected default cookie name access_token, got %s", cfg.Sessions.CookieName)
	}

	if cfg.Sessions.Lifetime != 24*time.Hour {
		t.Errorf("expected default session lifetime 24h, got %s", cfg.Sessions.Lifetime)
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("expected default CORS origins to be applied")
	}
}

func TestValidateLogConfig(t *testing.T) {
	cfg := validTestConfig()
	cfg.Log.Level = "verbose"

	if err := validateConfig(cfg); err == nil {
		t.Error("expected error for invalid log level")
	}

	cfg = validTestConfig()
	cfg.Log.Format = "xml"

	if err := validateConfig(cfg); err == nil {
		t.Error("expected error for invalid log format")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvOAuthClientID, "override.example.com")
	t.Setenv(EnvOAuthProviderURL, "https://auth.override.example.com")
	t.Setenv(EnvServerPort, "9090")

	cfg := validTestConfig()
	applyEnvironmentOverrides(cfg)

	if cfg.OAuth.ClientID != "override.example.com" {
		t.Errorf("expected overridden client id, got %s", cfg.OAuth.ClientID)
	}

	if cfg.OAuth.ProviderURL != "https://auth.override.example.com" {
		t.Errorf("expected overridden provider url, got %s", cfg.OAuth.ProviderURL)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected overridden port 9090, got %d", cfg.Server.Port)
	}
}
