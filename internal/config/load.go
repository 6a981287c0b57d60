package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

// ErrInvalidConfig wraps configuration that cannot be parsed or fails validation.
var ErrInvalidConfig = errors.New(messages.ConfigInvalid)

// Load reads the config file (a missing file yields defaults), applies environment
// overrides, expands ~ in paths, and validates the result.
func Load(sys System) (*Config, error) {
	if sys == nil {
		sys = RealSystem{}
	}
	path, err := Path(sys)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := sys.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	default:
		cfg, err = Parse(data, path)
		if err != nil {
			return nil, err
		}
		cfg.Found = true
	}
	cfg.Source = path

	applyEnv(cfg, sys)
	if err := cfg.expand(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes config TOML, rejecting unknown keys.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigInvalidConfigFmt, ErrInvalidConfig, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrInvalidConfig, source, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// applyEnv lets non-empty SHELL_TOOL_MCP_* variables replace file values.
func applyEnv(cfg *Config, sys System) {
	if v := strings.TrimSpace(sys.Getenv(EnvVendorRoot)); v != "" {
		cfg.VendorRoot = v
	}
	if v := strings.TrimSpace(sys.Getenv(EnvBashVariant)); v != "" {
		cfg.BashVariant = v
	}
	if v := strings.TrimSpace(sys.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
}

func (c *Config) expand() error {
	if c.VendorRoot != "" {
		expanded, err := expandPath(c.VendorRoot)
		if err != nil {
			return err
		}
		c.VendorRoot = expanded
	}
	for i, path := range c.OSReleasePaths {
		if path == "" {
			continue
		}
		expanded, err := expandPath(path)
		if err != nil {
			return err
		}
		c.OSReleasePaths[i] = expanded
	}
	return nil
}
