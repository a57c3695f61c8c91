package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:            "8080",
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "expense-backend-test",
		RedisURL:        "redis://localhost:6379",
		SummaryCacheTTL: 5 * time.Minute,
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		TokenDuration:   24 * time.Hour,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "empty mongo URI",
			mutate:      func(c *Config) { c.MongoURI = "" },
			wantErr:     true,
			errorString: "mongo URI cannot be empty",
		},
		{
			name:        "missing JWT secret",
			mutate:      func(c *Config) { c.JWTSecret = "" },
			wantErr:     true,
			errorString: "JWT_SECRET must be set",
		},
		{
			name:        "short JWT secret",
			mutate:      func(c *Config) { c.JWTSecret = "too-short" },
			wantErr:     true,
			errorString: "JWT_SECRET must be at least 32 characters",
		},
		{
			name:        "token duration too short",
			mutate:      func(c *Config) { c.TokenDuration = time.Second },
			wantErr:     true,
			errorString: "invalid token duration",
		},
		{
			name:        "cache TTL too short",
			mutate:      func(c *Config) { c.SummaryCacheTTL = time.Millisecond },
			wantErr:     true,
			errorString: "invalid summary cache TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.MongoDatabase != "expense-backend" {
		t.Errorf("expected default database name, got %s", cfg.MongoDatabase)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("expected default token duration 24h, got %v", cfg.TokenDuration)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected at least one default allowed origin")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_DURATION", "1h")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.TokenDuration != time.Hour {
		t.Errorf("expected token duration 1h, got %v", cfg.TokenDuration)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected allowed origins: %v", cfg.AllowedOrigins)
	}
}
