package messages

// System messages for platform detection, host fingerprinting, and variant selection.
const (
	// PlatformUnsupportedOSFmt indicates the host OS is not supported.
	PlatformUnsupportedOSFmt   = "unsupported platform: %s"
	PlatformUnsupportedArchFmt = "unsupported architecture: %s"
	PlatformNoTargetTripleFmt  = "no target triple for platform %s"
	PlatformUnsupported        = "unsupported platform"

	// HostinfoMissing is the sentinel text for absent host fingerprint input.
	HostinfoMissing                = "missing host info"
	HostinfoUnameFailedFmt         = "failed to read Darwin release via uname: %w"
	HostinfoUnameExitFmt           = "uname -r exited with status %d"
	HostinfoUnameNotUTF8           = "uname output was not UTF-8"
	HostinfoUnsupportedOSFmt       = "no host fingerprint strategy for %s"
	HostinfoOSReleaseUnreadableFmt = "os-release unreadable at %s: %v"

	// VariantNoneAvailable is the sentinel text for an empty or exhausted variant table.
	VariantNoneAvailable         = "no variant available"
	VariantSupportedFmt          = "Supported variants: %s"
	VariantLinuxUnavailableFmt   = "unable to select a Bash variant for %s %s. %s"
	VariantDarwinUnavailableFmt  = "unable to select a macOS Bash build (darwin %d). %s"
	VariantUnknownOverrideFmt    = "unknown Bash variant %q for %s. %s"
	VariantLinuxInfoRequired     = "Linux OS info is required to select Bash"
	VariantDarwinReleaseRequired = "Darwin release string is required"
	VariantUnsupportedOSFmt      = "no variant table for %s"

	// LauncherMissingRequiredFile is the sentinel text for absent vendor binaries.
	LauncherMissingRequiredFile = "missing required file"
	LauncherRequiredMissingFmt  = "Required %s missing: %s"
	LauncherVendorRootNotFound  = "vendor root not found"
	LauncherVendorRootSearchFmt = "unable to locate vendor/ directory relative to the binary (searched %s)"
	LauncherVendorOverrideFmt   = "vendor root %s (from configuration) does not exist"
	LauncherExecutableFmt       = "unable to locate current executable: %w"
	LauncherDescExecveWrapper   = "execve wrapper"
	LauncherDescServer          = "server binary"
	LauncherDescBash            = "Bash binary"

	// SupervisorChildSpawn is the sentinel text for spawn failures.
	SupervisorChildSpawn     = "child spawn failed"
	SupervisorChildWait      = "child wait failed"
	SupervisorSpawnFailedFmt = "failed to spawn %s: %w"
	SupervisorWaitFailedFmt  = "failed to wait for %s: %w"
	SupervisorPathRequired   = "child path is required"
	SupervisorSystemRequired = "supervisor system is required"
	SupervisorRaiseUnsafeFmt = "cannot restore the default action for %s on this platform"

	// LoggingUnknownLevelFmt reports a log level name hclog does not know.
	LoggingUnknownLevelFmt = "unknown log level %q"
)
