// Package testutil provides shared helpers for subprocess-heavy tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteEngineStub(t, dir, name, nil, 0)
}

// WriteEngineStub writes an executable shell stub that prints the given
// lines and exits with exitCode, mimicking a configuration management engine.
func WriteEngineStub(t *testing.T, dir string, name string, lines []string, exitCode int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	for _, line := range lines {
		fmt.Fprintf(&sb, "echo '%s'\n", line)
	}
	fmt.Fprintf(&sb, "exit %d\n", exitCode)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sb.String()), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteArgsStub writes an executable shell stub that records its arguments
// and environment to argsFile and exits 0.
func WriteArgsStub(t *testing.T, dir string, name string, argsFile string) string {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" > %s\nenv >> %s\nexit 0\n", argsFile, argsFile)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
