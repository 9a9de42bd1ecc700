package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the ontology engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8090"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	BaseURL  string `yaml:"base_url" env:"BASE_URL" env-default:""` // Auto-derived from Port if empty
	Version  string `yaml:"-"`                                      // Set at load time, not from config

	// Logging configuration
	Log LogConfig `yaml:"log"`

	// Ontology graph configuration
	Ontology OntologyConfig `yaml:"ontology"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// OntologyConfig holds settings for the in-memory ontology graph.
type OntologyConfig struct {
	// SeedDemo controls whether the server starts with the fixed demo graph
	// loaded. The demo dashboards expect it; API-only deployments start empty.
	SeedDemo bool `yaml:"seed_demo" env:"ONTOLOGY_SEED_DEMO" env-default:"true"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When no config.yaml exists the environment alone is used.
// The version parameter is injected at build time and set on the returned
// Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validateLogLevel(); err != nil {
		return nil, fmt.Errorf("invalid log configuration: %w", err)
	}

	// Auto-derive BaseURL from Port if not explicitly set
	if cfg.BaseURL == "" {
		cfg.BaseURL = (&url.URL{
			Scheme: "http",
			Host:   "localhost:" + cfg.Port,
		}).String()
	}

	return cfg, nil
}

func (c *Config) validateLogLevel() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unsupported log level %q", c.Log.Level)
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}
