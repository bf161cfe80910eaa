package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration read from environment variables.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	PostgresDSN     string        `envconfig:"POSTGRES_DSN" required:"true"`
	JWTSecret       string        `envconfig:"JWT_SECRET" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	// TargetDate, "kalan gün" hesabının hedef tarihi (YYYY-MM-DD).
	TargetDate string `envconfig:"TARGET_DATE" default:"2025-06-07"`

	targetDay time.Time
}

// Load reads and validates configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", cfg.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("invalid TARGET_DATE %q: %w", cfg.TargetDate, err)
	}
	cfg.targetDay = day

	return &cfg, nil
}

// TargetDay returns the parsed target date.
func (c *Config) TargetDay() time.Time {
	return c.targetDay
}
