package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/shell-tool-mcp/internal/logging"
	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

// Validate checks field values. source names the config in error messages.
func (c *Config) Validate(source string) error {
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: "+messages.ConfigLogLevelInvalidFmt,
			ErrInvalidConfig, source, c.LogLevel, strings.Join(logging.Levels, ", "))
	}
	for _, path := range c.OSReleasePaths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: "+messages.ConfigOSReleasePathEmptyFmt, ErrInvalidConfig, source)
		}
	}
	return nil
}
