package supervisor

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"syscall"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Notify and Stop fall back to RealSystem. Kill and Raise return errNotMocked,
// so no test signals a real process unless it opts in.
type testSystem struct {
	RealSystem

	NotifyFunc func(c chan<- os.Signal, sig ...os.Signal)
	StopFunc   func(c chan<- os.Signal)
	KillFunc   func(pid int, sig syscall.Signal) error
	RaiseFunc  func(sig syscall.Signal) error

	mu     sync.Mutex
	raised []syscall.Signal
	stops  int
}

func (s *testSystem) Notify(c chan<- os.Signal, sig ...os.Signal) {
	if s.NotifyFunc != nil {
		s.NotifyFunc(c, sig...)
		return
	}
	s.RealSystem.Notify(c, sig...)
}

func (s *testSystem) Stop(c chan<- os.Signal) {
	s.mu.Lock()
	s.stops++
	s.mu.Unlock()
	if s.StopFunc != nil {
		s.StopFunc(c)
		return
	}
	s.RealSystem.Stop(c)
}

func (s *testSystem) Kill(pid int, sig syscall.Signal) error {
	if s.KillFunc != nil {
		return s.KillFunc(pid, sig)
	}
	return fmt.Errorf("%w: Kill", errNotMocked)
}

func (s *testSystem) Raise(sig syscall.Signal) error {
	s.mu.Lock()
	s.raised = append(s.raised, sig)
	s.mu.Unlock()
	if s.RaiseFunc != nil {
		return s.RaiseFunc(sig)
	}
	return fmt.Errorf("%w: Raise", errNotMocked)
}

func (s *testSystem) Raised() []syscall.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]syscall.Signal(nil), s.raised...)
}

func (s *testSystem) Stops() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}
