package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:           "8080",
		Env:            "production",
		GoogleClientID: "client-id.apps.googleusercontent.com",
		SessionSecret:  "0123456789abcdef0123456789abcdef",
		SessionTTL:     12 * time.Hour,
		SessionBackend: "memory",
		SheetsBackend:  "memory",
		Sheets: SheetsConfig{
			SheetName:       "Budget",
			CategoriesRange: "G:G",
			AuthUsersRange:  "U:U",
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL = %v, want 12h", cfg.SessionTTL)
	}
	if cfg.Sheets.CategoriesRange != "G:G" || cfg.Sheets.AuthUsersRange != "U:U" {
		t.Errorf("unexpected default ranges: %+v", cfg.Sheets)
	}
	if cfg.SessionBackend != "memory" || cfg.SheetsBackend != "memory" {
		t.Errorf("unexpected default backends: %s / %s", cfg.SessionBackend, cfg.SheetsBackend)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NODE_ENV", "development")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("GOOGLE_SPREADSHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_SHEET_NAME", "Aug-Sep21")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected dev mode with NODE_ENV=development")
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
	if cfg.Sheets.SpreadsheetID != "sheet-id" || cfg.Sheets.SheetName != "Aug-Sep21" {
		t.Errorf("unexpected sheets config: %+v", cfg.Sheets)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "must be between"},
		{"missing client ID", func(c *Config) { c.GoogleClientID = "" }, "GOOGLE_CLIENT_ID is required"},
		{"missing secret", func(c *Config) { c.SessionSecret = "" }, "SESSION_SECRET is required"},
		{"short secret", func(c *Config) { c.SessionSecret = "short" }, "at least 16 bytes"},
		{"tiny TTL", func(c *Config) { c.SessionTTL = time.Second }, "session TTL"},
		{"unknown session backend", func(c *Config) { c.SessionBackend = "etcd" }, "invalid session backend"},
		{"redis without addr", func(c *Config) { c.SessionBackend = "redis"; c.Redis.Addr = "" }, "Redis address"},
		{"unknown sheets backend", func(c *Config) { c.SheetsBackend = "excel" }, "invalid sheets backend"},
		{"google without spreadsheet", func(c *Config) { c.SheetsBackend = "google" }, "Spreadsheet ID is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
