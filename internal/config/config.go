package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// InsecureDevSecret signs tokens when no JWT_SECRET is configured in the
// development environment. Startup fails rather than falling back to it
// anywhere else.
const InsecureDevSecret = "changeme-dev-only"

type Config struct {
	// Server
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Auth
	JWTSecret  string        `envconfig:"JWT_SECRET"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"168h"` // 7 days
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`

	// InsecureSecret is set when the development fallback secret is in use
	// so the caller can log a warning at startup.
	InsecureSecret bool `ignored:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// required:"true" only fires when the variable is unset; an explicitly
	// empty value must abort startup the same way.
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required when ENVIRONMENT=%s", cfg.Environment)
		}
		cfg.JWTSecret = InsecureDevSecret
		cfg.InsecureSecret = true
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}
