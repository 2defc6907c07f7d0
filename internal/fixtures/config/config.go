package config

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Environment values that refuse to start. The service clears and drops whole
// databases on request, so it must never be pointed at production data.
const (
	envProduction = "production"
	envProd       = "prod"
)

// ErrProductionEnvironment is returned when the deployment environment names
// production. Callers treat it as fatal at startup.
var ErrProductionEnvironment = errors.New("fixture service must not run in a production environment")

// Config holds all configuration for the fixtures module.
type Config struct {
	// MongoDBURI is the document database server address.
	MongoDBURI string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`

	// FixturesRoot is the directory scanned for fixture definitions.
	FixturesRoot string `env:"FIXTURES_ROOT" envDefault:"./fixtures"`

	// Environment is the deployment mode. "production"/"prod" aborts startup.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// LoadConfig loads configuration from environment variables and applies
// defaults. It returns ErrProductionEnvironment when the deployment mode
// names production.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load fixtures configuration from environment: " + err.Error())
	}

	if cfg.MongoDBURI == "" {
		return nil, errors.New("mongodb_uri is required")
	}
	if cfg.FixturesRoot == "" {
		return nil, errors.New("fixtures_root is required")
	}

	if cfg.IsProduction() {
		return nil, ErrProductionEnvironment
	}

	return cfg, nil
}

// DefaultConfig returns a Config with default values for local development.
func DefaultConfig() *Config {
	return &Config{
		MongoDBURI:   "mongodb://localhost:27017",
		FixturesRoot: "./fixtures",
		Environment:  "development",
	}
}

// IsProduction reports whether the configured environment names production.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == envProduction || env == envProd
}
