package supervisor

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/conn-castle/shell-tool-mcp/internal/testutil"
)

func newTestSupervisor(sys System) (*Supervisor, *bytes.Buffer) {
	var stdout bytes.Buffer
	s := New(sys, nil)
	s.Stdin = strings.NewReader("")
	s.Stdout = &stdout
	s.Stderr = &bytes.Buffer{}
	return s, &stdout
}

func TestChildArgs(t *testing.T) {
	got := ChildArgs("/v/helper", "/v/bash/ubuntu-24.04/bash", []string{"--port", "0"})
	assert.Equal(t, []string{"--execve", "/v/helper", "--bash", "/v/bash/ubuntu-24.04/bash", "--port", "0"}, got)

	got = ChildArgs("h", "b", nil)
	assert.Equal(t, []string{"--execve", "h", "--bash", "b"}, got)
}

func TestRun_ReturnsChildExitCode(t *testing.T) {
	dir := t.TempDir()
	stub := testutil.WriteStubWithExit(t, dir, "server", 7)
	sys := &testSystem{}
	s, _ := newTestSupervisor(sys)

	code, err := s.Run(Spec{Path: stub})
	require.NoError(t, err)
	assert.Equal(t, 7, code)
	assert.Empty(t, sys.Raised())
	assert.Equal(t, 1, sys.Stops())
}

func TestRun_ZeroExit(t *testing.T) {
	dir := t.TempDir()
	stub := testutil.WriteStub(t, dir, "server")
	s, _ := newTestSupervisor(&testSystem{})

	code, err := s.Run(Spec{Path: stub})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRun_PassesArgsAndStdio(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "args.txt")
	stub := testutil.WriteScript(t, dir, "server", "for arg in \"$@\"; do printf '%s\\n' \"$arg\" >> '"+out+"'; done\necho ready\n")
	s, stdout := newTestSupervisor(&testSystem{})

	code, err := s.Run(Spec{Path: stub, Args: ChildArgs("/h", "/b", []string{"extra arg"})})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "ready\n", stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "--execve\n/h\n--bash\n/b\nextra arg\n", string(data))
}

func TestRun_SpawnFailure(t *testing.T) {
	sys := &testSystem{}
	s, _ := newTestSupervisor(sys)

	code, err := s.Run(Spec{Path: filepath.Join(t.TempDir(), "missing-server")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChildSpawn)
	assert.Contains(t, err.Error(), "missing-server")
	assert.Equal(t, 1, code)
	assert.Equal(t, 1, sys.Stops())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestRun_WaitFailure(t *testing.T) {
	dir := t.TempDir()
	stub := testutil.WriteScript(t, dir, "server", "echo hello\n")
	s, _ := newTestSupervisor(&testSystem{})
	s.Stdout = failingWriter{}

	code, err := s.Run(Spec{Path: stub})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChildWait)
	assert.Equal(t, 1, code)
}

func TestRun_RequiresPathAndSystem(t *testing.T) {
	s, _ := newTestSupervisor(&testSystem{})
	_, err := s.Run(Spec{})
	assert.Error(t, err)

	s.System = nil
	_, err = s.Run(Spec{Path: "/bin/true"})
	assert.Error(t, err)
}

func TestRun_ForwardsQueuedSignalAndRaisesChildSignal(t *testing.T) {
	dir := t.TempDir()
	stub := testutil.WriteScript(t, dir, "server", "exec sleep 30\n")

	var (
		mu        sync.Mutex
		forwarded []syscall.Signal
		pids      []int
	)
	sys := &testSystem{}
	sys.NotifyFunc = func(c chan<- os.Signal, sig ...os.Signal) {
		assert.ElementsMatch(t, ForwardedSignals, sig)
		// Delivered before the child exists; it must be queued and forwarded after spawn.
		c <- syscall.SIGTERM
	}
	sys.KillFunc = func(pid int, sig syscall.Signal) error {
		mu.Lock()
		forwarded = append(forwarded, sig)
		pids = append(pids, pid)
		mu.Unlock()
		return RealSystem{}.Kill(pid, sig)
	}
	sys.RaiseFunc = func(syscall.Signal) error { return nil }
	s, _ := newTestSupervisor(sys)

	done := make(chan struct{})
	var code int
	var err error
	go func() {
		defer close(done)
		code, err = s.Run(Spec{Path: stub})
	}()
	select {
	case <-done:
	case <-time.After(20 * time.Second):
		t.Fatal("supervisor did not return after forwarding SIGTERM")
	}

	require.NoError(t, err)
	assert.Equal(t, 1, code)
	mu.Lock()
	assert.Equal(t, []syscall.Signal{syscall.SIGTERM}, forwarded)
	require.Len(t, pids, 1)
	assert.Positive(t, pids[0])
	mu.Unlock()
	assert.Equal(t, []syscall.Signal{syscall.SIGTERM}, sys.Raised())
}

func TestRun_ForwardErrorIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	stub := testutil.WriteScript(t, dir, "server", "sleep 0.2\nexit 3\n")

	sys := &testSystem{}
	sys.NotifyFunc = func(c chan<- os.Signal, _ ...os.Signal) {
		c <- syscall.SIGHUP
	}
	sys.KillFunc = func(int, syscall.Signal) error { return syscall.ESRCH }
	s, _ := newTestSupervisor(sys)

	code, err := s.Run(Spec{Path: stub})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Empty(t, sys.Raised())
}

func TestRun_RaiseFailureStillReturnsOne(t *testing.T) {
	dir := t.TempDir()
	stub := testutil.WriteScript(t, dir, "server", "kill -KILL $$\n")
	sys := &testSystem{}
	sys.RaiseFunc = func(syscall.Signal) error { return errors.New("raise blocked") }
	s, _ := newTestSupervisor(sys)

	code, err := s.Run(Spec{Path: stub})
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, []syscall.Signal{syscall.SIGKILL}, sys.Raised())
}

func TestTranslate_NilState(t *testing.T) {
	s, _ := newTestSupervisor(&testSystem{})
	assert.Equal(t, 1, s.translate(nil))
}

// TestRun_ChildSignalDeathPropagates runs a real supervisor in a subprocess, interrupts it,
// and checks that the supervisor itself dies from SIGINT.
func TestRun_ChildSignalDeathPropagates(t *testing.T) {
	if os.Getenv("GO_TEST_SUPERVISOR_SIGNAL_SUBPROCESS") == "1" {
		s := New(RealSystem{}, nil)
		_, err := s.Run(Spec{Path: os.Getenv("GO_TEST_SUPERVISOR_STUB")})
		if err != nil {
			os.Exit(2)
		}
		// Reached only if the re-raised signal did not terminate the process.
		os.Exit(3)
		return
	}

	dir := t.TempDir()
	marker := filepath.Join(dir, "started")
	stub := testutil.WriteScript(t, dir, "server", "touch '"+marker+"'\nexec sleep 30\n")

	cmd := exec.Command(os.Args[0], "-test.run=^TestRun_ChildSignalDeathPropagates$")
	cmd.Env = append(os.Environ(),
		"GO_TEST_SUPERVISOR_SIGNAL_SUBPROCESS=1",
		"GO_TEST_SUPERVISOR_STUB="+stub,
	)
	require.NoError(t, cmd.Start())
	t.Cleanup(func() { _ = cmd.Process.Kill() })

	deadline := time.Now().Add(10 * time.Second)
	for {
		if _, err := os.Stat(marker); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("child never started")
		}
		time.Sleep(20 * time.Millisecond)
	}

	require.NoError(t, cmd.Process.Signal(syscall.SIGINT))
	err := cmd.Wait()
	require.Error(t, err)

	status, ok := cmd.ProcessState.Sys().(syscall.WaitStatus)
	require.True(t, ok)
	if !status.Signaled() {
		t.Fatalf("expected supervisor to die from a signal, got exit code %d", status.ExitStatus())
	}
	assert.Equal(t, syscall.SIGINT, status.Signal())
}

// TestRun_ChildCrashSignalPropagates checks that a child killed by a signal the Go runtime
// handles itself is reproduced as death by that signal, without a runtime crash dump.
func TestRun_ChildCrashSignalPropagates(t *testing.T) {
	if os.Getenv("GO_TEST_SUPERVISOR_CRASH_SUBPROCESS") == "1" {
		// Keep the kernel from writing core files for the stub and for this process.
		_ = unix.Setrlimit(unix.RLIMIT_CORE, &unix.Rlimit{Cur: 0, Max: 0})
		s := New(RealSystem{}, nil)
		_, err := s.Run(Spec{Path: os.Getenv("GO_TEST_SUPERVISOR_STUB")})
		if err != nil {
			os.Exit(2)
		}
		os.Exit(3)
		return
	}
	if runtime.GOOS != "linux" {
		t.Skip("default signal actions are restored through rt_sigaction on linux only")
	}

	tests := []struct {
		name string
		sig  syscall.Signal
	}{
		{name: "ABRT", sig: syscall.SIGABRT},
		{name: "QUIT", sig: syscall.SIGQUIT},
		{name: "SEGV", sig: syscall.SIGSEGV},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			stub := testutil.WriteScript(t, dir, "server", "kill -"+tt.name+" $$\n")

			var stderr bytes.Buffer
			cmd := exec.Command(os.Args[0], "-test.run=^TestRun_ChildCrashSignalPropagates$")
			cmd.Env = append(os.Environ(),
				"GO_TEST_SUPERVISOR_CRASH_SUBPROCESS=1",
				"GO_TEST_SUPERVISOR_STUB="+stub,
			)
			cmd.Stderr = &stderr
			err := cmd.Run()
			require.Error(t, err)

			status, ok := cmd.ProcessState.Sys().(syscall.WaitStatus)
			require.True(t, ok)
			if !status.Signaled() {
				t.Fatalf("expected supervisor to die from %s, got exit code %d: %s", tt.sig, status.ExitStatus(), stderr.String())
			}
			assert.Equal(t, tt.sig, status.Signal())
			assert.NotContains(t, stderr.String(), "goroutine ")
		})
	}
}

// TestRun_ChildExitCodePropagates checks the exit code path end to end in a subprocess.
func TestRun_ChildExitCodePropagates(t *testing.T) {
	if os.Getenv("GO_TEST_SUPERVISOR_EXIT_SUBPROCESS") == "1" {
		s := New(RealSystem{}, nil)
		code, err := s.Run(Spec{Path: os.Getenv("GO_TEST_SUPERVISOR_STUB")})
		if err != nil {
			os.Exit(2)
		}
		os.Exit(code)
		return
	}

	dir := t.TempDir()
	stub := testutil.WriteStubWithExit(t, dir, "server", 42)

	cmd := exec.Command(os.Args[0], "-test.run=^TestRun_ChildExitCodePropagates$")
	cmd.Env = append(os.Environ(),
		"GO_TEST_SUPERVISOR_EXIT_SUBPROCESS=1",
		"GO_TEST_SUPERVISOR_STUB="+stub,
	)
	err := cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 42, exitErr.ExitCode())
}
