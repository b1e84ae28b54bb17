// Package testutil provides fake package-manager executables for tests
// that drive real subprocesses.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// StubCommand writes an executable shell stub named name into dir and
// prepends dir to PATH for the remainder of the test. The stub logs its
// arguments to <name>.argv in dir, prints stdout, and exits with code.
func StubCommand(t *testing.T, dir string, name string, stdout string, code int) {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %q\n", filepath.Join(dir, name+".argv"))
	if stdout != "" {
		// %b so escaped newlines in the quoted payload become real ones.
		script += fmt.Sprintf("printf '%%b' %q\n", stdout)
	}
	script += fmt.Sprintf("exit %d\n", code)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	PrependPath(t, dir)
}

// StubArgs returns the recorded invocation lines of a stub written by
// StubCommand, one line per call.
func StubArgs(t *testing.T, dir string, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name+".argv"))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read stub log %s: %v", name, err)
	}
	return string(data)
}

// PrependPath puts dir at the front of PATH for the remainder of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
