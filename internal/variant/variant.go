// Package variant picks the pre-built Bash variant that best fits the host fingerprint.
package variant

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/conn-castle/shell-tool-mcp/internal/hostinfo"
	"github.com/conn-castle/shell-tool-mcp/internal/messages"
	"github.com/conn-castle/shell-tool-mcp/internal/platform"
)

var (
	// ErrNoVariantAvailable reports an empty table or an unknown forced variant.
	ErrNoVariantAvailable = errors.New(messages.VariantNoneAvailable)
	// ErrMissingHostInfo reports that the fingerprint lacks the input the OS requires.
	ErrMissingHostInfo = hostinfo.ErrMissingHostInfo
)

// Match records which rule chose a variant.
type Match int

// Selection rules, from most to least specific.
const (
	MatchVersion Match = iota + 1
	MatchFamily
	MatchDefault
	MatchOverride
)

// String returns a short label for the rule.
func (m Match) String() string {
	switch m {
	case MatchVersion:
		return "version"
	case MatchFamily:
		return "family"
	case MatchDefault:
		return "default"
	case MatchOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Selection is the chosen variant and the path to its bash binary.
type Selection struct {
	Path    string
	Variant string
	Match   Match
}

// Path returns bashRoot/<name>/bash.
func Path(bashRoot string, name string) string {
	return filepath.Join(bashRoot, name, "bash")
}

func newSelection(bashRoot string, name string, match Match) Selection {
	return Selection{Path: Path(bashRoot, name), Variant: name, Match: match}
}

func supportedDetail(names []string) string {
	return fmt.Sprintf(messages.VariantSupportedFmt, strings.Join(names, ", "))
}

// SelectLinux picks the first family match whose version prefix matches, then the first
// family match, then the first table entry.
func SelectLinux(bashRoot string, info hostinfo.OSRelease, table []LinuxVariant) (Selection, error) {
	var family *LinuxVariant
	for i := range table {
		candidate := &table[i]
		if !matchesID(candidate.IDs, info) {
			continue
		}
		if matchesVersion(candidate.Versions, info.VersionID) {
			return newSelection(bashRoot, candidate.Name, MatchVersion), nil
		}
		if family == nil {
			family = candidate
		}
	}
	if family != nil {
		return newSelection(bashRoot, family.Name, MatchFamily), nil
	}
	if len(table) > 0 {
		return newSelection(bashRoot, table[0].Name, MatchDefault), nil
	}
	return Selection{}, fmt.Errorf("%w: "+messages.VariantLinuxUnavailableFmt,
		ErrNoVariantAvailable, info.ID, info.VersionID, supportedDetail(LinuxNames(table)))
}

func matchesID(ids []string, info hostinfo.OSRelease) bool {
	for _, id := range ids {
		if info.ID == id || slices.Contains(info.IDLike, id) {
			return true
		}
	}
	return false
}

func matchesVersion(prefixes []string, versionID string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(versionID, prefix) {
			return true
		}
	}
	return false
}

// SelectDarwin picks the first entry whose MinDarwin does not exceed the release's major
// version, then the first table entry.
func SelectDarwin(bashRoot string, release string, table []DarwinVariant) (Selection, error) {
	major := hostinfo.DarwinMajor(release)
	for _, candidate := range table {
		if major >= candidate.MinDarwin {
			return newSelection(bashRoot, candidate.Name, MatchVersion), nil
		}
	}
	if len(table) > 0 {
		return newSelection(bashRoot, table[0].Name, MatchDefault), nil
	}
	return Selection{}, fmt.Errorf("%w: "+messages.VariantDarwinUnavailableFmt,
		ErrNoVariantAvailable, major, supportedDetail(DarwinNames(table)))
}

// BashRoot returns targetRoot/bash.
func BashRoot(targetRoot string) string {
	return filepath.Join(targetRoot, "bash")
}

// Resolve selects a variant under targetRoot/bash using the fingerprint input for os.
func Resolve(targetRoot string, os platform.OS, fp hostinfo.Fingerprint) (Selection, error) {
	bashRoot := BashRoot(targetRoot)
	switch os {
	case platform.OSLinux:
		if fp.OSRelease == nil {
			return Selection{}, fmt.Errorf("%w: %s", ErrMissingHostInfo, messages.VariantLinuxInfoRequired)
		}
		return SelectLinux(bashRoot, *fp.OSRelease, LinuxVariants)
	case platform.OSMacOS:
		if fp.DarwinRelease == nil {
			return Selection{}, fmt.Errorf("%w: %s", ErrMissingHostInfo, messages.VariantDarwinReleaseRequired)
		}
		return SelectDarwin(bashRoot, *fp.DarwinRelease, DarwinVariants)
	default:
		return Selection{}, fmt.Errorf("%w: "+messages.VariantUnsupportedOSFmt, ErrNoVariantAvailable, os)
	}
}

// Override forces the variant called name from the table for os.
func Override(bashRoot string, os platform.OS, name string) (Selection, error) {
	var names []string
	switch os {
	case platform.OSLinux:
		names = LinuxNames(LinuxVariants)
	case platform.OSMacOS:
		names = DarwinNames(DarwinVariants)
	default:
		return Selection{}, fmt.Errorf("%w: "+messages.VariantUnsupportedOSFmt, ErrNoVariantAvailable, os)
	}
	if !slices.Contains(names, name) {
		return Selection{}, fmt.Errorf("%w: "+messages.VariantUnknownOverrideFmt,
			ErrNoVariantAvailable, name, os, supportedDetail(names))
	}
	return newSelection(bashRoot, name, MatchOverride), nil
}
