// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"SITE_DB_PATH" envDefault:"./data/site.db"`
	SessionSecret string `env:"SITE_SESSION_SECRET,required"`
	ServerHost    string `env:"SITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"SITE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"SITE_ENV" envDefault:"development"`
	LogLevel      string `env:"SITE_LOG_LEVEL" envDefault:"info"`

	// Seeding configuration
	SeedDemo bool `env:"SITE_SEED_DEMO" envDefault:"false"` // Seed demo content on startup
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SITE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	return cfg, nil
}
