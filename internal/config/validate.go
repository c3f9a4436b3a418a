package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Topics.validate(); err != nil {
		return fmt.Errorf("topics: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in [0, max_conns] (got %d)", d.MinConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (t *TopicsConfig) validate() error {
	if t.MaxPageLimit <= 0 {
		return fmt.Errorf("max_page_limit must be > 0 (got %d)", t.MaxPageLimit)
	}
	if t.DefaultPageLimit <= 0 || t.DefaultPageLimit > t.MaxPageLimit {
		return fmt.Errorf("default_page_limit must be in [1, %d] (got %d)", t.MaxPageLimit, t.DefaultPageLimit)
	}
	if t.UpdateRetryDelay <= 0 {
		return fmt.Errorf("update_retry_delay must be > 0 (got %s)", t.UpdateRetryDelay)
	}
	return nil
}
