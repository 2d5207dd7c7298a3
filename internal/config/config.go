// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogPretty switches zerolog to its human-readable console writer.
	LogPretty bool `env:"LOG_PRETTY" envDefault:"true"`

	// FormEndpoint is the third-party form relay the contact form posts to.
	FormEndpoint string `env:"PORTFOLIO_FORM_ENDPOINT"`

	OutputDir       string        `env:"PORTFOLIO_OUTPUT_DIR" envDefault:"public"`
	S3Bucket        string        `env:"PORTFOLIO_S3_BUCKET"`
	// CDNPriceClass is the CloudFront price class used when a distribution is created.
	CDNPriceClass   string        `env:"PORTFOLIO_CDN_PRICE_CLASS" envDefault:"PriceClass_100"`
	OTelEndpoint    string        `env:"PORTFOLIO_OTEL_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
