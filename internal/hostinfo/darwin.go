package hostinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

// Runner executes a command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Output runs name with args and returns stdout. A non-zero exit yields *exec.ExitError.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ReadDarwinRelease returns the trimmed output of `uname -r`.
func ReadDarwinRelease(ctx context.Context, runner Runner) (string, error) {
	if runner == nil {
		runner = ExecRunner{}
	}
	out, err := runner.Output(ctx, "uname", "-r")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: "+messages.HostinfoUnameExitFmt, ErrMissingHostInfo, exitErr.ExitCode())
		}
		return "", fmt.Errorf("%w: "+messages.HostinfoUnameFailedFmt, ErrMissingHostInfo, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %s", ErrMissingHostInfo, messages.HostinfoUnameNotUTF8)
	}
	return strings.TrimSpace(string(out)), nil
}

// DarwinMajor returns the integer before the first '.' of a Darwin release, or 0.
func DarwinMajor(release string) int {
	head, _, _ := strings.Cut(release, ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return major
}
