package shell

import "fmt"

// ShellType represents a supported shell
type ShellType string

const (
	// ShellBash represents the Bash shell
	ShellBash ShellType = "bash"
	// ShellZsh represents the Z shell
	ShellZsh ShellType = "zsh"
	// ShellFish represents the Fish shell
	ShellFish ShellType = "fish"
	// ShellUnknown represents an unknown or unsupported shell
	ShellUnknown ShellType = "unknown"
)

// String returns the string representation of the shell type
func (s ShellType) String() string {
	return string(s)
}

// IsValid returns true if the shell type is supported
func (s ShellType) IsValid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	default:
		return false
	}
}

// PathStatus is the outcome of a search path check
type PathStatus int

const (
	// NotOnPath means the directory is not a PATH entry
	NotOnPath PathStatus = iota
	// AlreadyOnPath means the directory is an exact PATH entry
	AlreadyOnPath
)

// String returns the string representation of the path status
func (p PathStatus) String() string {
	switch p {
	case AlreadyOnPath:
		return "already on PATH"
	case NotOnPath:
		return "not on PATH"
	default:
		return "unknown"
	}
}

// Environment holds the process environment values the advisor reads
type Environment struct {
	// Path is the command search path value ($PATH)
	Path string
	// Shell is the login shell path ($SHELL), may be empty
	Shell string
	// HomeDir is the user's home directory
	HomeDir string
}

// Guidance is the configuration advice for one shell
type Guidance struct {
	// Shell is the shell the snippets are written for
	Shell ShellType
	// RCFile is the startup file, displayed relative to home (e.g. "~/.bashrc")
	RCFile string
	// Export adds the directory to PATH for the current session
	Export string
	// Persist appends the export to the startup file
	Persist string
}

// Advice is the result of the environment check
type Advice struct {
	// Status reports whether the directory is already on PATH
	Status PathStatus
	// Shell is the shell detected from $SHELL
	Shell ShellType
	// Guidance is empty when Status is AlreadyOnPath
	Guidance []Guidance
}

// UnsupportedShellError represents an unsupported shell error
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell: %s (supported: bash, zsh, fish)", e.Shell)
}
