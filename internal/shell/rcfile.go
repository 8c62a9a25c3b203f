package shell

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RCFilePath returns the path to the shell's startup file under homeDir
func RCFilePath(shell ShellType, homeDir string) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	if homeDir == "" {
		return "", fmt.Errorf("home directory is required")
	}

	switch shell {
	case ShellBash:
		return filepath.Join(homeDir, ".bashrc"), nil
	case ShellZsh:
		return filepath.Join(homeDir, ".zshrc"), nil
	case ShellFish:
		return filepath.Join(homeDir, ".config", "fish", "config.fish"), nil
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}
}

// DisplayPath renders path relative to homeDir using prefix, e.g.
// DisplayPath("/home/u/.bashrc", "/home/u", "~") returns "~/.bashrc".
// Paths outside homeDir are returned unchanged.
func DisplayPath(path, homeDir, prefix string) string {
	if homeDir == "" {
		return path
	}

	rel, err := filepath.Rel(homeDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	if rel == "." {
		return prefix
	}
	return prefix + "/" + filepath.ToSlash(rel)
}
