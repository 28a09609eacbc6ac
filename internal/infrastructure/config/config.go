package config

import (
	"fmt"

	"plumbing_estimator/internal/domain/entities"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config is the process configuration, read from the environment (and .env via godotenv).
//
// Supported env vars (local-friendly):
//   - PORT (default: 8080)
//   - LOG_LEVEL (default: info)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - SERVICES_TABLE (default: services)
//   - CATALOG_SEED (default: false) seeds the default catalog on startup
//   - QUOTE_DEFAULT_LOCATION_FACTOR / QUOTE_DEFAULT_OVERHEAD_PCT / QUOTE_DEFAULT_TAX_PCT
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	ServicesTable      string `envconfig:"SERVICES_TABLE" default:"services"`

	SeedCatalog bool `envconfig:"CATALOG_SEED" default:"false"`

	DefaultLocationFactor float64 `envconfig:"QUOTE_DEFAULT_LOCATION_FACTOR" default:"1.0"`
	DefaultOverheadPct    float64 `envconfig:"QUOTE_DEFAULT_OVERHEAD_PCT" default:"0.10"`
	DefaultTaxPct         float64 `envconfig:"QUOTE_DEFAULT_TAX_PCT" default:"0.08"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.ServicesTable == "" {
		return fmt.Errorf("SERVICES_TABLE must not be empty")
	}
	if c.DefaultLocationFactor <= 0 {
		return fmt.Errorf("QUOTE_DEFAULT_LOCATION_FACTOR must be positive, got %v", c.DefaultLocationFactor)
	}
	if c.DefaultOverheadPct < 0 {
		return fmt.Errorf("QUOTE_DEFAULT_OVERHEAD_PCT must not be negative, got %v", c.DefaultOverheadPct)
	}
	if c.DefaultTaxPct < 0 {
		return fmt.Errorf("QUOTE_DEFAULT_TAX_PCT must not be negative, got %v", c.DefaultTaxPct)
	}
	return nil
}

// QuoteDefaults returns the configured adjustment factors.
func (c Config) QuoteDefaults() entities.Adjustments {
	return entities.Adjustments{
		LocationFactor: decimal.NewFromFloat(c.DefaultLocationFactor),
		OverheadPct:    decimal.NewFromFloat(c.DefaultOverheadPct),
		TaxPct:         decimal.NewFromFloat(c.DefaultTaxPct),
	}
}
