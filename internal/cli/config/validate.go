package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: expected text or json", c.LogFormat)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path is required\nHint: use -o to choose where the table is written")
	}
	return nil
}
