package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// HTTP Server
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"NODE_ENV" envDefault:"production"`

	// Identity provider
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// Sessions
	SessionSecret  string        `env:"SESSION_SECRET"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SessionBackend string        `env:"SESSION_BACKEND" envDefault:"memory"`
	Redis          RedisConfig   `envPrefix:"REDIS_"`

	// Spreadsheet
	SheetsBackend string       `env:"SHEETS_BACKEND" envDefault:"memory"`
	Sheets        SheetsConfig `envPrefix:"GOOGLE_"`

	// Static assets
	StaticDir string `env:"STATIC_DIR" envDefault:"./public"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type SheetsConfig struct {
	SpreadsheetID   string `env:"SPREADSHEET_ID"`
	SheetName       string `env:"SHEET_NAME" envDefault:"Budget"`
	CategoriesRange string `env:"CATEGORIES_RANGE" envDefault:"G:G"`
	AuthUsersRange  string `env:"AUTH_USERS_RANGE" envDefault:"U:U"`
	CredentialsJSON string `env:"SERVICE_ACCOUNT_JSON"`
	CredentialsFile string `env:"SERVICE_ACCOUNT_FILE"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// IsDev reports development mode; session cookies are only marked
// secure outside of it.
func (c *Config) IsDev() bool {
	e := strings.ToLower(c.Env)
	return e == "development" || e == "dev"
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.GoogleClientID == "" {
		errors = append(errors, "GOOGLE_CLIENT_ID is required")
	}
	if c.SessionSecret == "" {
		errors = append(errors, "SESSION_SECRET is required")
	} else if len(c.SessionSecret) < 16 {
		errors = append(errors, "SESSION_SECRET must be at least 16 bytes")
	}

	if c.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	}

	switch c.SessionBackend {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			errors = append(errors, "Redis address cannot be empty when using redis session backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid session backend '%s': must be one of [memory redis]", c.SessionBackend))
	}

	switch c.SheetsBackend {
	case "memory":
	case "google":
		if c.Sheets.SpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using google sheets backend")
		}
		if c.Sheets.SheetName == "" {
			errors = append(errors, "Google sheet name is required when using google sheets backend")
		}
		if c.Sheets.CategoriesRange == "" || c.Sheets.AuthUsersRange == "" {
			errors = append(errors, "categories and auth users ranges cannot be empty when using google sheets backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid sheets backend '%s': must be one of [memory google]", c.SheetsBackend))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}
