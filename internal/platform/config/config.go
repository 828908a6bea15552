// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr      string `env:"NEWWORLD_HTTP_ADDR" envDefault:":8080"`
	DBDSN         string `env:"NEWWORLD_DB_DSN"`
	MigrationsDir string `env:"NEWWORLD_MIGRATIONS_DIR" envDefault:"migrations"`
	// Scenario names a scenario file loaded as a game at startup.
	Scenario     string `env:"NEWWORLD_SCENARIO"`
	ScenarioRoot string `env:"NEWWORLD_SCENARIO_ROOT"`
	LogLevel     string `env:"NEWWORLD_LOG_LEVEL" envDefault:"info"`
	LogDev       bool   `env:"NEWWORLD_LOG_DEV" envDefault:"false"`
	// Requests per second and burst allowed per client address.
	RateLimit      float64 `env:"NEWWORLD_RATE_LIMIT" envDefault:"20"`
	RateBurst      int     `env:"NEWWORLD_RATE_BURST" envDefault:"40"`
	MaxSearchTurns int     `env:"NEWWORLD_MAX_SEARCH_TURNS" envDefault:"8"`
	CORSOrigin     string  `env:"NEWWORLD_CORS_ORIGIN" envDefault:"*"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 1
	}
	return cfg, nil
}
