// Package supervisor runs one child process to completion while forwarding
// termination signals to it, then reproduces the child's exit on the current process.
package supervisor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

var (
	// ErrChildSpawn reports that the child could not be started.
	ErrChildSpawn = errors.New(messages.SupervisorChildSpawn)
	// ErrChildWait reports that waiting on the child failed for a reason other than its exit.
	ErrChildWait = errors.New(messages.SupervisorChildWait)
)

// ForwardedSignals are relayed unchanged to the child.
var ForwardedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// Spec is the child command line.
type Spec struct {
	Path string
	Args []string
}

// ChildArgs builds the server arguments: --execve <helper> --bash <bash> followed by passthrough.
func ChildArgs(helper string, bash string, passthrough []string) []string {
	args := make([]string, 0, 4+len(passthrough))
	args = append(args, "--execve", helper, "--bash", bash)
	return append(args, passthrough...)
}

// Supervisor spawns and waits on a single child.
type Supervisor struct {
	System System
	Logger hclog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Supervisor wired to the process's standard streams.
func New(sys System, logger hclog.Logger) *Supervisor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Supervisor{
		System: sys,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts spec, forwards signals until it exits, and returns the exit code to use.
// When the child died from a signal, Run re-raises that signal on the current process
// and returns 1 only if the process survives it.
func (s *Supervisor) Run(spec Spec) (int, error) {
	if s.System == nil {
		return 1, errors.New(messages.SupervisorSystemRequired)
	}
	if spec.Path == "" {
		return 1, errors.New(messages.SupervisorPathRequired)
	}
	logger := s.logger()

	// Subscribed before Start so signals arriving during spawn are queued for the child.
	sigs := make(chan os.Signal, 8)
	s.System.Notify(sigs, ForwardedSignals...)

	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if err := cmd.Start(); err != nil {
		s.System.Stop(sigs)
		return 1, fmt.Errorf("%w: "+messages.SupervisorSpawnFailedFmt, ErrChildSpawn, spec.Path, err)
	}
	pid := cmd.Process.Pid
	logger.Debug("child started", "path", spec.Path, "pid", pid)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.forward(pid, sigs, stop)
	}()

	waitErr := cmd.Wait()
	s.System.Stop(sigs)
	close(stop)
	wg.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return 1, fmt.Errorf("%w: "+messages.SupervisorWaitFailedFmt, ErrChildWait, spec.Path, waitErr)
		}
	}
	return s.translate(cmd.ProcessState), nil
}

func (s *Supervisor) forward(pid int, sigs <-chan os.Signal, stop <-chan struct{}) {
	logger := s.logger()
	for {
		select {
		case <-stop:
			// Signals still buffered here arrived after the child was reaped and are dropped.
			return
		case sig := <-sigs:
			sysSig, ok := sig.(syscall.Signal)
			if !ok {
				continue
			}
			logger.Debug("forwarding signal", "signal", sysSig, "pid", pid)
			if err := s.System.Kill(pid, sysSig); err != nil {
				// The child may already be gone.
				logger.Debug("signal delivery failed", "signal", sysSig, "pid", pid, "error", err)
			}
		}
	}
}

// translate maps the child's final state onto an exit code, re-raising fatal signals first.
func (s *Supervisor) translate(state *os.ProcessState) int {
	logger := s.logger()
	if state == nil {
		return 1
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		sig := status.Signal()
		logger.Debug("child terminated by signal", "signal", sig)
		if err := s.System.Raise(sig); err != nil {
			logger.Warn("failed to re-raise child signal", "signal", sig, "error", err)
		}
		return 1
	}
	code := state.ExitCode()
	if code < 0 {
		return 1
	}
	logger.Debug("child exited", "code", code)
	return code
}

func (s *Supervisor) logger() hclog.Logger {
	if s.Logger == nil {
		return hclog.NewNullLogger()
	}
	return s.Logger
}
