package supervisor

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// raiseGrace bounds how long Raise waits for a self-sent signal to land.
var raiseGrace = time.Second

// System abstracts the signal operations used by the supervisor.
type System interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
	Kill(pid int, sig syscall.Signal) error
	Raise(sig syscall.Signal) error
}

// RealSystem implements System using os/signal and golang.org/x/sys/unix.
type RealSystem struct{}

// Notify relays incoming sig to c.
func (RealSystem) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

// Stop ends relaying to c.
func (RealSystem) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// Kill sends sig to pid.
func (RealSystem) Kill(pid int, sig syscall.Signal) error {
	return unix.Kill(pid, sig)
}

// Raise restores the default disposition of sig and sends it to the current process.
func (RealSystem) Raise(sig syscall.Signal) error {
	signal.Reset(sig)
	if err := restoreDefaultAction(sig); err != nil {
		return err
	}
	if err := unix.Kill(unix.Getpid(), sig); err != nil {
		return err
	}
	// Delivery to the current process is asynchronous.
	time.Sleep(raiseGrace)
	return nil
}
