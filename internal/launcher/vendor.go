package launcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

var (
	// ErrVendorRootNotFound reports that no vendor/ directory could be located.
	ErrVendorRootNotFound = errors.New(messages.LauncherVendorRootNotFound)
	// ErrMissingRequiredFile reports an absent helper, server, or bash binary.
	ErrMissingRequiredFile = errors.New(messages.LauncherMissingRequiredFile)
)

// File names inside a target directory.
const (
	ExecveWrapperName = "codex-execve-wrapper"
	ServerName        = "codex-exec-mcp-server"
	VendorDirName     = "vendor"
)

// Layout holds the paths inside vendor/<triple>.
type Layout struct {
	TargetRoot    string
	ExecveWrapper string
	Server        string
	BashRoot      string
}

// NewLayout returns the layout for triple under vendorRoot.
func NewLayout(vendorRoot string, triple string) Layout {
	target := filepath.Join(vendorRoot, triple)
	return Layout{
		TargetRoot:    target,
		ExecveWrapper: filepath.Join(target, ExecveWrapperName),
		Server:        filepath.Join(target, ServerName),
		BashRoot:      filepath.Join(target, "bash"),
	}
}

// FindVendorRoot returns override when it is set and exists. Otherwise it looks for vendor/
// beside the executable, first with symlinks resolved and then as invoked.
func FindVendorRoot(sys System, override string) (string, error) {
	if override != "" {
		if !exists(sys, override) {
			return "", fmt.Errorf("%w: "+messages.LauncherVendorOverrideFmt, ErrVendorRootNotFound, override)
		}
		return override, nil
	}

	exe, err := sys.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: "+messages.LauncherExecutableFmt, ErrVendorRootNotFound, err)
	}

	var candidates []string
	if resolved, err := sys.EvalSymlinks(exe); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(resolved), VendorDirName))
	}
	raw := filepath.Join(filepath.Dir(exe), VendorDirName)
	if len(candidates) == 0 || candidates[0] != raw {
		candidates = append(candidates, raw)
	}

	for _, candidate := range candidates {
		if exists(sys, candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: "+messages.LauncherVendorRootSearchFmt, ErrVendorRootNotFound, strings.Join(candidates, ", "))
}

// RequireExists fails with ErrMissingRequiredFile when path is absent.
func RequireExists(sys System, path string, description string) error {
	if !exists(sys, path) {
		return fmt.Errorf("%w: "+messages.LauncherRequiredMissingFmt, ErrMissingRequiredFile, description, path)
	}
	return nil
}

func exists(sys System, path string) bool {
	_, err := sys.Stat(path)
	return err == nil
}
