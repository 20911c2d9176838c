package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/laibe/ratio-gang-cli/pkg/models"
)

// Config represents the application configuration
type Config struct {
	// Provider credentials, both required
	PolygonKey   string `env:"POLYGON_KEY"`
	CoinGeckoKey string `env:"COINGECKO_KEY"`

	// Provider endpoints, overridable for testing
	PolygonURL   string `env:"POLYGON_API_URL, default=https://api.polygon.io"`
	CoinGeckoURL string `env:"COINGECKO_API_URL, default=https://api.coingecko.com"`

	Logging LoggingConfig `env:", prefix=LOG_"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=warn"`
	Format string `env:"FORMAT, default=text"`
	Output string `env:"OUTPUT, default=stderr"`
}

// Load loads configuration from environment variables using go-envconfig
func Load() (*Config, error) {
	ctx := context.Background()
	var cfg Config

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that both provider credentials are present. POLYGON_KEY is
// checked before COINGECKO_KEY so failure messages are deterministic.
func (c *Config) Validate() error {
	if c.PolygonKey == "" {
		return &models.EnvMissingError{Name: "POLYGON_KEY"}
	}
	if c.CoinGeckoKey == "" {
		return &models.EnvMissingError{Name: "COINGECKO_KEY"}
	}
	return nil
}
