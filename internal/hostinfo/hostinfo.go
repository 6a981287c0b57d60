// Package hostinfo reads the host fingerprint that drives Bash variant selection:
// os-release fields on Linux and the kernel release on macOS.
package hostinfo

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
	"github.com/conn-castle/shell-tool-mcp/internal/platform"
)

// ErrMissingHostInfo reports that a required fingerprint input is absent or unreadable.
var ErrMissingHostInfo = errors.New(messages.HostinfoMissing)

// Fingerprint is the host identity used for variant matching.
// A nil field was not collected, which is distinct from an empty value.
type Fingerprint struct {
	OSRelease     *OSRelease
	DarwinRelease *string
	// Source names where the fingerprint came from (a file path or a command).
	Source string
}

// Sources configures where Collect reads the fingerprint from.
type Sources struct {
	// OSReleasePaths overrides DefaultOSReleasePaths when non-empty.
	OSReleasePaths []string
	// DarwinRelease skips running uname when non-empty.
	DarwinRelease string
	Runner        Runner
}

// Collect reads the fingerprint input required for os and leaves the other field nil.
func Collect(ctx context.Context, os platform.OS, src Sources) (Fingerprint, error) {
	switch os {
	case platform.OSLinux:
		info, path := ReadFirstOSRelease(src.OSReleasePaths...)
		return Fingerprint{OSRelease: &info, Source: path}, nil
	case platform.OSMacOS:
		if src.DarwinRelease != "" {
			release := src.DarwinRelease
			return Fingerprint{DarwinRelease: &release, Source: "override"}, nil
		}
		release, err := ReadDarwinRelease(ctx, src.Runner)
		if err != nil {
			return Fingerprint{}, err
		}
		return Fingerprint{DarwinRelease: &release, Source: "uname -r"}, nil
	default:
		return Fingerprint{}, fmt.Errorf("%w: "+messages.HostinfoUnsupportedOSFmt, ErrMissingHostInfo, os)
	}
}
