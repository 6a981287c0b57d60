// Package platform maps the running host onto the closed set of supported
// OS/architecture pairs and names the vendor directory built for each pair.
package platform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

// ErrUnsupportedPlatform reports an OS or architecture outside the supported set.
var ErrUnsupportedPlatform = errors.New(messages.PlatformUnsupported)

// OS identifies a supported host operating system.
type OS int

// Supported operating systems.
const (
	OSLinux OS = iota + 1
	OSMacOS
)

// Arch identifies a supported CPU architecture.
type Arch int

// Supported architectures.
const (
	ArchX86_64 Arch = iota + 1
	ArchAarch64
)

// Platform is the detected (OS, Arch) pair.
type Platform struct {
	OS   OS
	Arch Arch
}

// String returns the canonical OS name.
func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSMacOS:
		return "macos"
	default:
		return fmt.Sprintf("os(%d)", int(o))
	}
}

// String returns the canonical architecture name.
func (a Arch) String() string {
	switch a {
	case ArchX86_64:
		return "x86_64"
	case ArchAarch64:
		return "aarch64"
	default:
		return fmt.Sprintf("arch(%d)", int(a))
	}
}

// String renders the platform as os/arch.
func (p Platform) String() string {
	return p.OS.String() + "/" + p.Arch.String()
}

var (
	goos   = runtime.GOOS
	goarch = runtime.GOARCH
)

// DetectHost classifies the platform this binary was built for.
func DetectHost() (Platform, error) {
	return Detect(goos, goarch)
}

// Detect classifies an OS and architecture name pair.
// Both the canonical names (linux, macos, x86_64, aarch64) and the Go
// toolchain names (darwin, amd64, arm64) are accepted.
func Detect(osName string, arch string) (Platform, error) {
	var p Platform
	switch osName {
	case "linux":
		p.OS = OSLinux
	case "macos", "darwin":
		p.OS = OSMacOS
	default:
		return Platform{}, fmt.Errorf("%w: "+messages.PlatformUnsupportedOSFmt, ErrUnsupportedPlatform, osName)
	}

	switch arch {
	case "x86_64", "amd64":
		p.Arch = ArchX86_64
	case "aarch64", "arm64":
		p.Arch = ArchAarch64
	default:
		return Platform{}, fmt.Errorf("%w: "+messages.PlatformUnsupportedArchFmt, ErrUnsupportedPlatform, arch)
	}

	return p, nil
}

// TargetTriple returns the vendor directory name for the platform.
func TargetTriple(p Platform) (string, error) {
	switch {
	case p.OS == OSLinux && p.Arch == ArchX86_64:
		return "x86_64-unknown-linux-musl", nil
	case p.OS == OSLinux && p.Arch == ArchAarch64:
		return "aarch64-unknown-linux-musl", nil
	case p.OS == OSMacOS && p.Arch == ArchX86_64:
		return "x86_64-apple-darwin", nil
	case p.OS == OSMacOS && p.Arch == ArchAarch64:
		return "aarch64-apple-darwin", nil
	}
	return "", fmt.Errorf("%w: "+messages.PlatformNoTargetTripleFmt, ErrUnsupportedPlatform, p)
}
