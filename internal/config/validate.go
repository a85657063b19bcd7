package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Dispatch.Workers < 1 {
		return fmt.Errorf("dispatch.workers must be >= 1 (got %d)", c.Dispatch.Workers)
	}
	if c.Dispatch.QueueSize < 1 {
		return fmt.Errorf("dispatch.queue_size must be >= 1 (got %d)", c.Dispatch.QueueSize)
	}

	if c.Fetcher.PageSize < 1 {
		return fmt.Errorf("fetcher.page_size must be >= 1 (got %d)", c.Fetcher.PageSize)
	}
	if c.Fetcher.MaxPages < 1 {
		return fmt.Errorf("fetcher.max_pages must be >= 1 (got %d)", c.Fetcher.MaxPages)
	}

	if c.Sweep.Enabled {
		if _, err := cron.ParseStandard(c.Sweep.Schedule); err != nil {
			return fmt.Errorf("sweep.schedule: %w", err)
		}
	}

	return nil
}
