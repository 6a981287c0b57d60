package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Executable and Output return errNotMocked so tests never depend on the test binary's
// location or the host's uname. EvalSymlinks and Stat fall back to RealSystem for
// t.TempDir fixtures.
type testSystem struct {
	RealSystem

	ExecutableFunc   func() (string, error)
	EvalSymlinksFunc func(path string) (string, error)
	StatFunc         func(name string) (os.FileInfo, error)
	OutputFunc       func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func (s *testSystem) Executable() (string, error) {
	if s.ExecutableFunc != nil {
		return s.ExecutableFunc()
	}
	return "", fmt.Errorf("%w: Executable", errNotMocked)
}

func (s *testSystem) EvalSymlinks(path string) (string, error) {
	if s.EvalSymlinksFunc != nil {
		return s.EvalSymlinksFunc(path)
	}
	return s.RealSystem.EvalSymlinks(path)
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if s.OutputFunc != nil {
		return s.OutputFunc(ctx, name, args...)
	}
	return nil, fmt.Errorf("%w: Output", errNotMocked)
}
