package messages

// Doctor messages for the doctor command.
const (
	// DoctorHeaderFmt introduces the check list.
	DoctorHeaderFmt = "Checking shell-tool-mcp launch readiness (config: %s)\n"

	DoctorCheckNameConfig      = "Config"
	DoctorCheckNamePlatform    = "Platform"
	DoctorCheckNameVendor      = "Vendor"
	DoctorCheckNameFingerprint = "Host"
	DoctorCheckNameVariant     = "Variant"
	DoctorCheckNameFiles       = "Files"
	DoctorCheckNameProbe       = "MCP"

	DoctorConfigLoadedFmt      = "Configuration loaded from %s"
	DoctorConfigDefaultsFmt    = "No config file at %s; using defaults"
	DoctorConfigFailedFmt      = "Failed to load configuration: %v"
	DoctorConfigRecommend      = "Fix or remove the config file. Unknown keys are rejected."
	DoctorPlatformFmt          = "%s (target %s)"
	DoctorPlatformFailedFmt    = "%v"
	DoctorPlatformRecommend    = "Supported hosts are linux and macos on x86_64 or aarch64."
	DoctorVendorFoundFmt       = "Vendor root: %s"
	DoctorVendorFailedFmt      = "%v"
	DoctorVendorRecommend      = "Install the vendor/ directory next to shell-tool-mcp or set vendor_root in the config."
	DoctorOSReleaseFmt         = "os-release %s: id=%q id_like=%q version=%q"
	DoctorOSReleaseMissing     = "No readable os-release file; automatic selection will use the default variant"
	DoctorOSReleaseRecommend   = "Pass --os-release or set os_release_paths to point at the host's os-release file."
	DoctorDarwinReleaseFmt     = "Darwin release %s from %s (major %d)"
	DoctorFingerprintFailedFmt = "%v"
	DoctorVariantFmt           = "%s via %s match: %s"
	DoctorVariantFallbackFmt   = "%s chosen by %s fallback; the host may not match this build"
	DoctorVariantFailedFmt     = "%v"
	DoctorVariantRecommend     = "Set bash_variant in the config to force a specific build."
	DoctorFilePresentFmt       = "%s present: %s"
	DoctorFileMissingFmt       = "%v"
	DoctorFileRecommend        = "Reinstall the package so the vendor directory is complete."
	DoctorProbeOKFmt           = "Server %s %s answered with %d tools"
	DoctorProbeFailedFmt       = "MCP handshake failed: %v"
	DoctorProbeRecommend       = "Run shell-tool-mcp directly to see the server's stderr."
	DoctorProbeNotReady        = "Skipped MCP handshake because earlier checks failed"

	DoctorProbeConnectFailedFmt = "connection failed: %w"
	DoctorProbeListFailedFmt    = "list tools failed: %w"

	DoctorFailureSummary = "Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "All checks passed. shell-tool-mcp is ready to launch."

	// DoctorStatusOKLabel is printed before passing checks.
	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       > "
	DoctorRecommendationIndent = "         "
)
