package messages

// CLI messages for the launcher and doctor commands.
const (
	// RootUse is the launcher command name.
	RootUse   = "shell-tool-mcp"
	RootShort = "Launch the exec MCP server with the Bash build that matches this host"
	RootLong  = "Resolves the vendor directory for this platform, selects a Bash variant from the host fingerprint,\nthen runs codex-exec-mcp-server with every argument passed through unchanged."

	// RootInteractiveHint is printed to stderr when stdin is a terminal.
	RootInteractiveHint = "shell-tool-mcp speaks MCP over stdio; it is normally started by an MCP client. Run shell-tool-doctor to check this host."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// DoctorUse is the doctor command name.
	DoctorUse   = "shell-tool-doctor"
	DoctorShort = "Check that this host can launch the exec MCP server"

	DoctorFlagVendorRoot    = "Vendor directory to inspect (defaults to config, then next to this binary)"
	DoctorFlagOSRelease     = "os-release file to read instead of the default search paths (repeatable)"
	DoctorFlagDarwinRelease = "Darwin kernel release to assume instead of running uname -r"
	DoctorFlagOS            = "Operating system to assume (linux or macos)"
	DoctorFlagArch          = "Architecture to assume (x86_64 or aarch64)"
	DoctorFlagVariant       = "Force a Bash variant instead of automatic selection"
	DoctorFlagProbe         = "Start the server and perform an MCP handshake"
	DoctorFlagTimeout       = "Time limit for the MCP handshake probe"
	DoctorFlagOSArchPair    = "--os and --arch must be set together"
)
