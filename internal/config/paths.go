package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

// Environment variables read by Load.
const (
	EnvConfigPath  = "SHELL_TOOL_MCP_CONFIG"
	EnvVendorRoot  = "SHELL_TOOL_MCP_VENDOR_ROOT"
	EnvBashVariant = "SHELL_TOOL_MCP_BASH_VARIANT"
	EnvLogLevel    = "SHELL_TOOL_MCP_LOG_LEVEL"
)

// DefaultPath is used when EnvConfigPath is unset.
const DefaultPath = "~/.config/shell-tool-mcp/config.toml"

var expandHome = homedir.Expand

// Path returns the config file location with ~ expanded.
func Path(sys System) (string, error) {
	path := strings.TrimSpace(sys.Getenv(EnvConfigPath))
	if path == "" {
		path = DefaultPath
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return expanded, nil
}
