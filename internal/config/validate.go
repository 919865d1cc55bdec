package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Register.validate(); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.MaxPerMinute <= 0 {
		return fmt.Errorf("rate_limit.max_per_minute must be > 0 when enabled (got %d)", c.RateLimit.MaxPerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (r *RegisterConfig) validate() error {
	if r.MaxRowsPerBooking <= 0 {
		return fmt.Errorf("max_rows_per_booking must be > 0 (got %d)", r.MaxRowsPerBooking)
	}
	if r.ExportMaxRows <= 0 {
		return fmt.Errorf("export_max_rows must be > 0 (got %d)", r.ExportMaxRows)
	}
	if strings.TrimSpace(r.DefaultOperator) == "" {
		return fmt.Errorf("default_operator must not be blank")
	}
	return nil
}
