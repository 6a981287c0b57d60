// Package testutil writes executable shell stubs that stand in for the server,
// helper, and bash binaries in tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) string {
	t.Helper()
	body := fmt.Sprintf("for arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg)
	return WriteScript(t, dir, name, body)
}

// WriteArgRecorder writes a stub that appends each of its arguments, one per line, to outPath.
func WriteArgRecorder(t *testing.T, dir string, name string, outPath string) string {
	t.Helper()
	body := fmt.Sprintf("for arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> '%s'\ndone\n", outPath)
	return WriteScript(t, dir, name, body)
}

// WriteScript writes body as an executable /bin/sh script and returns its path.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create stub dir: %v", err)
	}
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
