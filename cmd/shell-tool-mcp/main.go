package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/conn-castle/shell-tool-mcp/internal/config"
	"github.com/conn-castle/shell-tool-mcp/internal/launcher"
	"github.com/conn-castle/shell-tool-mcp/internal/logging"
	"github.com/conn-castle/shell-tool-mcp/internal/messages"
	"github.com/conn-castle/shell-tool-mcp/internal/supervisor"
	"github.com/conn-castle/shell-tool-mcp/internal/terminal"
)

var (
	loadConfig = func() (*config.Config, error) {
		return config.Load(config.RealSystem{})
	}
	prepare  = launcher.Prepare
	runChild = func(spec supervisor.Spec, logger hclog.Logger) (int, error) {
		return supervisor.New(supervisor.RealSystem{}, logger).Run(spec)
	}
	isInteractive = terminal.IsInteractive
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                messages.RootUse,
		Short:              messages.RootShort,
		Long:               messages.RootLong,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := launch(cmd.Context(), passthroughArgs(args), stderr)
			if err != nil {
				return err
			}
			if code != 0 {
				return &SilentExitError{Code: code}
			}
			return nil
		},
	}
}

// argsTerminator is placed ahead of the user's arguments so cobra never resolves them
// as a subcommand such as completion or __complete.
const argsTerminator = "--"

// passthroughArgs removes the terminator added by runMain.
func passthroughArgs(args []string) []string {
	if len(args) > 0 && args[0] == argsTerminator {
		return args[1:]
	}
	return args
}

// launch prepares the plan and supervises the server, returning the exit code to use.
func launch(ctx context.Context, args []string, stderr io.Writer) (int, error) {
	cfg, err := loadConfig()
	if err != nil {
		return 1, err
	}
	logger := logging.New(cfg.LogLevel, stderr)
	if isInteractive() {
		_, _ = fmt.Fprintln(stderr, messages.RootInteractiveHint)
	}

	plan, err := prepare(ctx, launcher.RealSystem{}, cfg, args, logger)
	if err != nil {
		return 1, err
	}
	logger.Info("launching server",
		"server", plan.Spec.Path,
		"platform", plan.Platform.String(),
		"variant", plan.Selection.Variant,
		"match", plan.Selection.Match.String(),
	)
	return runChild(plan.Spec, logger)
}

// runMain executes the launcher and exits with the child's translated status.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	cmd := newRootCmd(stderr)
	cmdArgs := []string{argsTerminator}
	if len(args) > 1 {
		cmdArgs = append(cmdArgs, args[1:]...)
	}
	cmd.SetArgs(cmdArgs)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		var silent *SilentExitError
		if errors.As(err, &silent) {
			exit(silent.Code)
			return
		}
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}
