// Package config loads the optional launcher configuration file and applies
// SHELL_TOOL_MCP_* environment overrides on top of it.
package config

// Config holds launcher settings. Every field is optional.
type Config struct {
	// VendorRoot overrides vendor/ discovery next to the executable.
	VendorRoot string `toml:"vendor_root"`
	// OSReleasePaths replaces the default os-release search order.
	OSReleasePaths []string `toml:"os_release_paths"`
	// BashVariant forces a variant by name; empty selects automatically.
	BashVariant string `toml:"bash_variant"`
	LogLevel    string `toml:"log_level"`

	// Source is the config file path that was consulted.
	Source string `toml:"-"`
	// Found reports whether Source existed.
	Found bool `toml:"-"`
}
