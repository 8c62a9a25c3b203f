package binary

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeTransfer is a Transfer that writes canned content instead of running
// an HTTP client.
type fakeTransfer struct {
	body    []byte
	partial []byte // written before failing, to simulate an interrupted stream
	err     error

	calls   int
	gotURL  string
	gotDest string
}

func (f *fakeTransfer) Name() string    { return "fake" }
func (f *fakeTransfer) Command() string { return "fake-http-client" }

func (f *fakeTransfer) Transfer(ctx context.Context, url, destPath string) error {
	f.calls++
	f.gotURL = url
	f.gotDest = destPath

	if f.err != nil {
		if f.partial != nil {
			if err := os.WriteFile(destPath, f.partial, 0644); err != nil {
				return err
			}
		}
		return f.err
	}
	return os.WriteFile(destPath, f.body, 0644)
}

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes are not supported on windows")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

// dirEntries returns the names in dir, failing the test on error.
func dirEntries(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
