//go:build !(linux && (amd64 || arm64))

package supervisor

import (
	"fmt"
	"syscall"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

// runtimeFatal are the signals the Go runtime terminates on with the default action once
// signal.Reset has run. Any other signal would be swallowed or turned into a crash dump.
var runtimeFatal = map[syscall.Signal]bool{
	syscall.SIGHUP:  true,
	syscall.SIGINT:  true,
	syscall.SIGTERM: true,
	syscall.SIGKILL: true,
}

func restoreDefaultAction(sig syscall.Signal) error {
	if runtimeFatal[sig] {
		return nil
	}
	return fmt.Errorf(messages.SupervisorRaiseUnsafeFmt, sig)
}
