package shell

import "strings"

// ParseShell extracts the shell type from a shell binary path
// Examples:
//   - /bin/bash -> bash
//   - /usr/bin/zsh -> zsh
//   - /usr/local/bin/fish -> fish
func ParseShell(shellPath string) ShellType {
	if shellPath == "" {
		return ShellUnknown
	}

	// $SHELL may hold a Windows path (Git Bash, MSYS) on any host
	baseName := shellPath[strings.LastIndexAny(shellPath, `/\`)+1:]
	baseName = strings.TrimSuffix(strings.ToLower(baseName), ".exe")

	switch baseName {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ShellUnknown
	}
}

// ValidateShell validates that a shell type is supported
func ValidateShell(shell ShellType) error {
	if !shell.IsValid() {
		return &UnsupportedShellError{Shell: shell.String()}
	}
	return nil
}
