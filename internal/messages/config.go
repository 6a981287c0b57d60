package messages

// Config messages for configuration loading and validation.
const (
	// ConfigInvalid is the sentinel text for rejected configuration.
	ConfigInvalid               = "invalid configuration"
	ConfigReadFailedFmt         = "failed to read config %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized config keys: %w"
	ConfigLogLevelInvalidFmt    = "%s: log_level %q must be one of %s"
	ConfigOSReleasePathEmptyFmt = "%s: os_release_paths entries must not be empty"
	ConfigExpandPathFmt         = "failed to expand %s: %w"
)
