package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/arshubham/srtnr/internal/provider"
)

// Env is the process configuration read from environment variables
type Env struct {
	GooGlAPIKey    string        `env:"SRTNR_GOOGL_API_KEY"`
	BitLyToken     string        `env:"SRTNR_BITLY_TOKEN"`
	HTTPTimeout    time.Duration `env:"SRTNR_HTTP_TIMEOUT" envDefault:"0s"`
	LogLevel       string        `env:"SRTNR_LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool          `env:"SRTNR_LOG_DEVELOPMENT" envDefault:"false"`
}

// LoadEnv parses the environment
func LoadEnv() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.HTTPTimeout < 0 {
		return nil, fmt.Errorf("SRTNR_HTTP_TIMEOUT must not be negative, got %s", cfg.HTTPTimeout)
	}
	return cfg, nil
}

// Credentials returns the provider secrets
func (e *Env) Credentials() provider.Credentials {
	return provider.Credentials{
		GooGlAPIKey: e.GooGlAPIKey,
		BitLyToken:  e.BitLyToken,
	}
}
