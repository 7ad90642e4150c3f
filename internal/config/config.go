// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunable knobs shared by the CLI, the dashboard and the
// HTTP server. Unset variables keep the defaults.
type Config struct {
	DBPath               string        `env:"PETRACK_DB_PATH"`
	HTTPAddr             string        `env:"PETRACK_HTTP_ADDR"             envDefault:":5000"`
	DecayInterval        time.Duration `env:"PETRACK_DECAY_INTERVAL"        envDefault:"10s"`
	PollInterval         time.Duration `env:"PETRACK_POLL_INTERVAL"         envDefault:"5s"`
	NotificationDuration time.Duration `env:"PETRACK_NOTIFICATION_DURATION" envDefault:"3s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
