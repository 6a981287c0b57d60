package doctor

import (
	"context"
	"fmt"

	"github.com/conn-castle/shell-tool-mcp/internal/config"
	"github.com/conn-castle/shell-tool-mcp/internal/hostinfo"
	"github.com/conn-castle/shell-tool-mcp/internal/launcher"
	"github.com/conn-castle/shell-tool-mcp/internal/messages"
	"github.com/conn-castle/shell-tool-mcp/internal/platform"
	"github.com/conn-castle/shell-tool-mcp/internal/variant"
)

var detectHost = platform.DetectHost

// CheckConfig reports the outcome of config.Load.
func CheckConfig(cfg *config.Config, err error) Result {
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigFailedFmt, err),
			Recommendation: messages.DoctorConfigRecommend,
		}
	}
	msg := fmt.Sprintf(messages.DoctorConfigDefaultsFmt, cfg.Source)
	if cfg.Found {
		msg = fmt.Sprintf(messages.DoctorConfigLoadedFmt, cfg.Source)
	}
	return Result{Status: StatusOK, CheckName: messages.DoctorCheckNameConfig, Message: msg}
}

// CheckPlatform classifies osName/arch, or the build host when both are empty.
func CheckPlatform(osName string, arch string) (Result, platform.Platform, string, error) {
	var (
		p   platform.Platform
		err error
	)
	if osName == "" && arch == "" {
		p, err = detectHost()
	} else {
		p, err = platform.Detect(osName, arch)
	}
	var triple string
	if err == nil {
		triple, err = platform.TargetTriple(p)
	}
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePlatform,
			Message:        fmt.Sprintf(messages.DoctorPlatformFailedFmt, err),
			Recommendation: messages.DoctorPlatformRecommend,
		}, platform.Platform{}, "", err
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePlatform,
		Message:   fmt.Sprintf(messages.DoctorPlatformFmt, p, triple),
	}, p, triple, nil
}

// CheckVendor locates the vendor root.
func CheckVendor(sys launcher.System, override string) (Result, string, error) {
	root, err := launcher.FindVendorRoot(sys, override)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameVendor,
			Message:        fmt.Sprintf(messages.DoctorVendorFailedFmt, err),
			Recommendation: messages.DoctorVendorRecommend,
		}, "", err
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameVendor,
		Message:   fmt.Sprintf(messages.DoctorVendorFoundFmt, root),
	}, root, nil
}

// CheckFingerprint collects the host fingerprint. An unreadable os-release is a warning
// because selection still succeeds with the default variant.
func CheckFingerprint(ctx context.Context, os platform.OS, src hostinfo.Sources) (Result, hostinfo.Fingerprint, error) {
	fp, err := hostinfo.Collect(ctx, os, src)
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameFingerprint,
			Message:   fmt.Sprintf(messages.DoctorFingerprintFailedFmt, err),
		}, hostinfo.Fingerprint{}, err
	}

	result := Result{Status: StatusOK, CheckName: messages.DoctorCheckNameFingerprint}
	switch {
	case fp.OSRelease != nil && fp.Source == "":
		result.Status = StatusWarn
		result.Message = messages.DoctorOSReleaseMissing
		result.Recommendation = messages.DoctorOSReleaseRecommend
	case fp.OSRelease != nil:
		info := fp.OSRelease
		result.Message = fmt.Sprintf(messages.DoctorOSReleaseFmt, fp.Source, info.ID, info.IDLike, info.VersionID)
	case fp.DarwinRelease != nil:
		release := *fp.DarwinRelease
		result.Message = fmt.Sprintf(messages.DoctorDarwinReleaseFmt, release, fp.Source, hostinfo.DarwinMajor(release))
	}
	return result, fp, nil
}

// CheckVariant selects the Bash variant. Family and default fallbacks are warnings.
func CheckVariant(layout launcher.Layout, os platform.OS, fp hostinfo.Fingerprint, override string) (Result, variant.Selection, error) {
	sel, err := launcher.Select(layout, os, fp, override)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameVariant,
			Message:        fmt.Sprintf(messages.DoctorVariantFailedFmt, err),
			Recommendation: messages.DoctorVariantRecommend,
		}, variant.Selection{}, err
	}
	if sel.Match == variant.MatchFamily || sel.Match == variant.MatchDefault {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameVariant,
			Message:        fmt.Sprintf(messages.DoctorVariantFallbackFmt, sel.Variant, sel.Match),
			Recommendation: messages.DoctorVariantRecommend,
		}, sel, nil
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameVariant,
		Message:   fmt.Sprintf(messages.DoctorVariantFmt, sel.Variant, sel.Match, sel.Path),
	}, sel, nil
}

// CheckFiles reports each required binary.
func CheckFiles(sys launcher.System, layout launcher.Layout, sel variant.Selection) []Result {
	var results []Result
	for _, f := range launcher.RequiredFiles(layout, sel) {
		if err := launcher.RequireExists(sys, f.Path, f.Description); err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameFiles,
				Message:        fmt.Sprintf(messages.DoctorFileMissingFmt, err),
				Recommendation: messages.DoctorFileRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameFiles,
			Message:   fmt.Sprintf(messages.DoctorFilePresentFmt, f.Description, f.Path),
		})
	}
	return results
}
