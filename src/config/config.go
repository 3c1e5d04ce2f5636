package config

import (
	"fmt"
	"os"

	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// applyDefaults fills the optional dashboard fields before validation.
func (c *Config) applyDefaults() {
	if c.Dashboard.DefaultTicker == "" {
		c.Dashboard.DefaultTicker = utils.DefaultTicker
	}
	if c.Dashboard.DefaultPeriod == "" {
		c.Dashboard.DefaultPeriod = utils.DefaultPeriod
	}
	if len(c.Dashboard.Watchlist) == 0 {
		c.Dashboard.Watchlist = append([]string{}, utils.DefaultWatchlist...)
	}
	if c.Network.UserAgent == "" {
		c.Network.UserAgent = utils.DefaultUserAgent
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration (Flattened)
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Validate Network configuration
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}

	// Validate Dashboard configuration
	if !utils.IsValidPeriod(c.Dashboard.DefaultPeriod) {
		return fmt.Errorf("invalid default period: %s", c.Dashboard.DefaultPeriod)
	}
	if len(c.Dashboard.Watchlist) == 0 {
		return fmt.Errorf("watchlist must have at least one symbol")
	}
	for i, sym := range c.Dashboard.Watchlist {
		if sym == "" {
			return fmt.Errorf("watchlist symbol %d cannot be empty", i)
		}
	}

	return nil
}
