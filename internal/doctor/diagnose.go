package doctor

import (
	"context"

	"github.com/conn-castle/shell-tool-mcp/internal/hostinfo"
	"github.com/conn-castle/shell-tool-mcp/internal/launcher"
	"github.com/conn-castle/shell-tool-mcp/internal/platform"
	"github.com/conn-castle/shell-tool-mcp/internal/supervisor"
	"github.com/conn-castle/shell-tool-mcp/internal/variant"
)

// Inputs overrides what the launcher would otherwise detect.
type Inputs struct {
	OS             string
	Arch           string
	VendorRoot     string
	OSReleasePaths []string
	DarwinRelease  string
	Variant        string
}

// Diagnosis is the result of walking the launch pipeline.
type Diagnosis struct {
	Results     []Result
	Platform    platform.Platform
	Triple      string
	Layout      launcher.Layout
	Fingerprint hostinfo.Fingerprint
	Selection   variant.Selection
	complete    bool
}

// Diagnose runs the launch checks in order, stopping at the first step that leaves
// later steps without input.
func Diagnose(ctx context.Context, sys launcher.System, in Inputs) *Diagnosis {
	if sys == nil {
		sys = launcher.RealSystem{}
	}
	d := &Diagnosis{}

	result, p, triple, err := CheckPlatform(in.OS, in.Arch)
	d.Results = append(d.Results, result)
	if err != nil {
		return d
	}
	d.Platform, d.Triple = p, triple

	result, root, err := CheckVendor(sys, in.VendorRoot)
	d.Results = append(d.Results, result)
	if err != nil {
		return d
	}
	d.Layout = launcher.NewLayout(root, triple)

	result, fp, err := CheckFingerprint(ctx, p.OS, hostinfo.Sources{
		OSReleasePaths: in.OSReleasePaths,
		DarwinRelease:  in.DarwinRelease,
		Runner:         sys,
	})
	d.Results = append(d.Results, result)
	if err != nil {
		return d
	}
	d.Fingerprint = fp

	result, sel, err := CheckVariant(d.Layout, p.OS, fp, in.Variant)
	d.Results = append(d.Results, result)
	if err != nil {
		return d
	}
	d.Selection = sel

	d.Results = append(d.Results, CheckFiles(sys, d.Layout, sel)...)
	d.complete = true
	return d
}

// Failed reports whether any check failed.
func (d *Diagnosis) Failed() bool {
	for _, r := range d.Results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// Ready reports whether every step ran and none failed.
func (d *Diagnosis) Ready() bool {
	return d.complete && !d.Failed()
}

// Spec returns the child command line the launcher would run.
func (d *Diagnosis) Spec(passthrough []string) supervisor.Spec {
	return supervisor.Spec{
		Path: d.Layout.Server,
		Args: supervisor.ChildArgs(d.Layout.ExecveWrapper, d.Selection.Path, passthrough),
	}
}
