// Package launcher turns the host, the vendor directory, and configuration into a
// ready-to-run child command line for the exec MCP server.
package launcher

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/conn-castle/shell-tool-mcp/internal/config"
	"github.com/conn-castle/shell-tool-mcp/internal/hostinfo"
	"github.com/conn-castle/shell-tool-mcp/internal/messages"
	"github.com/conn-castle/shell-tool-mcp/internal/platform"
	"github.com/conn-castle/shell-tool-mcp/internal/supervisor"
	"github.com/conn-castle/shell-tool-mcp/internal/variant"
)

var detectHost = platform.DetectHost

// Plan is everything resolved before the child is spawned.
type Plan struct {
	Platform    platform.Platform
	Triple      string
	VendorRoot  string
	Layout      Layout
	Fingerprint hostinfo.Fingerprint
	Selection   variant.Selection
	Spec        supervisor.Spec
}

// Prepare detects the platform, locates the vendor tree, fingerprints the host, selects a
// Bash variant, and checks that the helper, server, and bash binaries exist.
// Nothing is spawned; the first failing step's error is returned.
func Prepare(ctx context.Context, sys System, cfg *config.Config, passthrough []string, logger hclog.Logger) (*Plan, error) {
	if sys == nil {
		sys = RealSystem{}
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	p, err := detectHost()
	if err != nil {
		return nil, err
	}
	triple, err := platform.TargetTriple(p)
	if err != nil {
		return nil, err
	}

	vendorRoot, err := FindVendorRoot(sys, cfg.VendorRoot)
	if err != nil {
		return nil, err
	}
	layout := NewLayout(vendorRoot, triple)
	logger.Debug("resolved vendor layout", "platform", p.String(), "target_root", layout.TargetRoot)

	fp, err := hostinfo.Collect(ctx, p.OS, hostinfo.Sources{
		OSReleasePaths: cfg.OSReleasePaths,
		Runner:         sys,
	})
	if err != nil {
		return nil, err
	}

	selection, err := Select(layout, p.OS, fp, cfg.BashVariant)
	if err != nil {
		return nil, err
	}
	logger.Debug("selected bash variant", "variant", selection.Variant, "match", selection.Match.String(), "source", fp.Source)

	if err := CheckFiles(sys, layout, selection); err != nil {
		return nil, err
	}

	return &Plan{
		Platform:    p,
		Triple:      triple,
		VendorRoot:  vendorRoot,
		Layout:      layout,
		Fingerprint: fp,
		Selection:   selection,
		Spec: supervisor.Spec{
			Path: layout.Server,
			Args: supervisor.ChildArgs(layout.ExecveWrapper, selection.Path, passthrough),
		},
	}, nil
}

// Select forces override when set and otherwise resolves the variant from fp.
func Select(layout Layout, os platform.OS, fp hostinfo.Fingerprint, override string) (variant.Selection, error) {
	if override != "" {
		return variant.Override(layout.BashRoot, os, override)
	}
	return variant.Resolve(layout.TargetRoot, os, fp)
}

// RequiredFile is one binary that must exist before launch.
type RequiredFile struct {
	Description string
	Path        string
}

// RequiredFiles lists the helper, server, and selected bash in check order.
func RequiredFiles(layout Layout, selection variant.Selection) []RequiredFile {
	return []RequiredFile{
		{Description: messages.LauncherDescExecveWrapper, Path: layout.ExecveWrapper},
		{Description: messages.LauncherDescServer, Path: layout.Server},
		{Description: messages.LauncherDescBash, Path: selection.Path},
	}
}

// CheckFiles returns the first missing required file.
func CheckFiles(sys System, layout Layout, selection variant.Selection) error {
	for _, f := range RequiredFiles(layout, selection) {
		if err := RequireExists(sys, f.Path, f.Description); err != nil {
			return err
		}
	}
	return nil
}
