package config

import (
	"fmt"

	"cinefuse/internal/scope"
)

// Validate ensures the configuration is usable. Any failure here is
// fatal at startup, before any record is processed.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateScope(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMatching() error {
	return c.Matching.Policy().Validate()
}

func (c *Config) validateScope() error {
	if c.Scope.YearStart < 0 {
		return fmt.Errorf("scope.year_start must be >= 0, got %d", c.Scope.YearStart)
	}
	if _, err := scope.Named(c.Scope.Name, c.Scope.YearStart); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
