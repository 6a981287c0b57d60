package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/shell-tool-mcp/internal/config"
	"github.com/conn-castle/shell-tool-mcp/internal/doctor"
	"github.com/conn-castle/shell-tool-mcp/internal/launcher"
	"github.com/conn-castle/shell-tool-mcp/internal/messages"
	"github.com/conn-castle/shell-tool-mcp/internal/terminal"
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	loadConfig = func() (*config.Config, error) {
		return config.Load(config.RealSystem{})
	}
	configPath = func() string {
		path, err := config.Path(config.RealSystem{})
		if err != nil {
			return config.DefaultPath
		}
		return path
	}
	newSystem = func() launcher.System {
		return launcher.RealSystem{}
	}
	probe      = doctor.Probe
	isTerminal = func() bool {
		return terminal.IsTerminal(os.Stdout)
	}
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the doctor command and exits 1 on any failure.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	cmd := newDoctorCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

type doctorFlags struct {
	vendorRoot    string
	osRelease     []string
	darwinRelease string
	osName        string
	arch          string
	variant       string
	probe         bool
	timeout       time.Duration
}

func newDoctorCmd() *cobra.Command {
	var flags doctorFlags
	cmd := &cobra.Command{
		Use:           messages.DoctorUse,
		Short:         messages.DoctorShort,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (flags.osName == "") != (flags.arch == "") {
				return errors.New(messages.DoctorFlagOSArchPair)
			}
			if !isTerminal() {
				color.NoColor = true
			}
			return runDoctor(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.vendorRoot, "vendor-root", "", messages.DoctorFlagVendorRoot)
	cmd.Flags().StringArrayVar(&flags.osRelease, "os-release", nil, messages.DoctorFlagOSRelease)
	cmd.Flags().StringVar(&flags.darwinRelease, "darwin-release", "", messages.DoctorFlagDarwinRelease)
	cmd.Flags().StringVar(&flags.osName, "os", "", messages.DoctorFlagOS)
	cmd.Flags().StringVar(&flags.arch, "arch", "", messages.DoctorFlagArch)
	cmd.Flags().StringVar(&flags.variant, "variant", "", messages.DoctorFlagVariant)
	cmd.Flags().BoolVar(&flags.probe, "probe", false, messages.DoctorFlagProbe)
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 10*time.Second, messages.DoctorFlagTimeout)
	return cmd
}

func runDoctor(cmd *cobra.Command, flags doctorFlags) error {
	out := cmd.OutOrStdout()
	cfg, cfgErr := loadConfig()
	source := configPath()
	if cfg != nil && cfg.Source != "" {
		source = cfg.Source
	}
	_, _ = fmt.Fprintf(out, messages.DoctorHeaderFmt, source)

	results := []doctor.Result{doctor.CheckConfig(cfg, cfgErr)}
	if cfg == nil {
		cfg = &config.Config{}
	}

	d := doctor.Diagnose(cmd.Context(), newSystem(), doctor.Inputs{
		OS:             flags.osName,
		Arch:           flags.arch,
		VendorRoot:     firstNonEmpty(flags.vendorRoot, cfg.VendorRoot),
		OSReleasePaths: firstNonEmptySlice(flags.osRelease, cfg.OSReleasePaths),
		DarwinRelease:  flags.darwinRelease,
		Variant:        firstNonEmpty(flags.variant, cfg.BashVariant),
	})
	results = append(results, d.Results...)

	if flags.probe {
		if d.Ready() {
			results = append(results, probe(cmd.Context(), d.Spec(nil), Version, flags.timeout))
		} else {
			results = append(results, doctor.Result{
				Status:    doctor.StatusWarn,
				CheckName: messages.DoctorCheckNameProbe,
				Message:   messages.DoctorProbeNotReady,
			})
		}
	}

	hasFail := false
	for _, r := range results {
		printResult(out, r)
		if r.Status == doctor.StatusFail {
			hasFail = true
		}
	}
	if hasFail {
		_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
		return errors.New(messages.DoctorFailureError)
	}
	_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
	return nil
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptySlice(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
