package launcher

import (
	"context"
	"os"
	"path/filepath"

	"github.com/conn-castle/shell-tool-mcp/internal/hostinfo"
)

// System abstracts the OS lookups used while preparing a launch.
// It also serves as the hostinfo.Runner for uname.
type System interface {
	Executable() (string, error)
	EvalSymlinks(path string) (string, error)
	Stat(name string) (os.FileInfo, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Executable returns the path of the running binary.
func (RealSystem) Executable() (string, error) {
	return os.Executable()
}

// EvalSymlinks resolves symlinks in path.
func (RealSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Stat returns file info for name.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Output runs a command and returns its stdout.
func (RealSystem) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return hostinfo.ExecRunner{}.Output(ctx, name, args...)
}
