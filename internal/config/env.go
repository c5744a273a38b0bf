package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing.
type envConfig struct {
	ServerBaseURL  string        `env:"APOMIND_SERVER_URL"`
	DatabaseDSN    string        `env:"APOMIND_DATABASE_DSN"`
	RequestTimeout time.Duration `env:"APOMIND_REQUEST_TIMEOUT"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the existing config value in place.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
