package binary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExecutableMode is the mode of an installed binary (rwxr-xr-x)
const ExecutableMode os.FileMode = 0755

// Install places the staged binary at {targetDir}/{tool} and marks it
// executable, creating targetDir if needed.
// Any existing binary at that path is replaced; the replacement is a
// rename so the old binary stays intact until the new one is complete.
func Install(stagedPath, targetDir string, tool Tool) (string, error) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", &FilesystemError{Op: "create install dir", Path: targetDir, Cause: err}
	}

	destPath := filepath.Join(targetDir, tool.String())

	src, err := os.Open(stagedPath)
	if err != nil {
		return "", &FilesystemError{Op: "open staged binary", Path: stagedPath, Cause: err}
	}
	defer src.Close()

	tmpFile, err := os.CreateTemp(targetDir, "."+tool.String()+".install-*")
	if err != nil {
		return "", &FilesystemError{Op: "create temp file", Path: targetDir, Cause: err}
	}
	tmpPath := tmpFile.Name()

	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		return "", &FilesystemError{Op: "write binary", Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Chmod(ExecutableMode); err != nil {
		return "", &FilesystemError{Op: "set executable", Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return "", &FilesystemError{Op: "sync binary", Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Close(); err != nil {
		return "", &FilesystemError{Op: "close binary", Path: tmpPath, Cause: err}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", &FilesystemError{Op: "rename into place", Path: destPath, Cause: err}
	}

	cleanupNeeded = false
	return destPath, nil
}

// IsInstalled checks if path is a regular file with an executable bit set
func IsInstalled(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat binary: %w", err)
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	return info.Mode().Perm()&0111 != 0, nil
}
