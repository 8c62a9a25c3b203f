// Package testutil provides utilities for testing the installer in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Env describes an isolated test environment.
type Env struct {
	// Home is the fake home directory ($HOME)
	Home string
	// BinDir is the only directory on $PATH
	BinDir string
	// TmpDir is the fake temp directory ($TMPDIR)
	TmpDir string
}

// SetupTestEnv creates isolated directories and points HOME, PATH and
// TMPDIR at them so tests never touch:
// - the user's real ~/.local/bin
// - HTTP clients installed on the machine
// - the system temp directory
//
// SHELL is cleared. Cleanup is handled by t.TempDir and t.Setenv.
func SetupTestEnv(t *testing.T) *Env {
	t.Helper()

	tmpDir := t.TempDir()

	env := &Env{
		Home:   filepath.Join(tmpDir, "home"),
		BinDir: filepath.Join(tmpDir, "path-bin"),
		TmpDir: filepath.Join(tmpDir, "tmp"),
	}

	for _, dir := range []string{env.Home, env.BinDir, env.TmpDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("PATH", env.BinDir)
	t.Setenv("TMPDIR", env.TmpDir)
	t.Setenv("SHELL", "")

	return env
}

// WriteExecutable writes a /bin/sh script named name into dir.
// Tests using it are skipped on Windows.
func WriteExecutable(t *testing.T, dir, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes are not supported on windows")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("failed to write executable %s: %v", path, err)
	}
	return path
}
