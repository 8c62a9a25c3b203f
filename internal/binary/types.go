package binary

import (
	"errors"
	"fmt"
	"time"

	"github.com/fairhill1/hal-install/internal/platform"
)

// Tool represents a binary published as release artifacts
type Tool string

const (
	// ToolHal represents the hal binary
	ToolHal Tool = "hal"
)

// String returns the string representation of the tool
func (t Tool) String() string {
	return string(t)
}

// Repository identifies the source repository releases are published from
type Repository struct {
	Host  string // e.g. "github.com"
	Owner string
	Name  string
}

// DefaultRepository is where hal releases are published
var DefaultRepository = Repository{
	Host:  "github.com",
	Owner: "fairhill1",
	Name:  "hal",
}

// String returns the repository as "owner/name"
func (r Repository) String() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// Artifact identifies the remote file to fetch for one platform
type Artifact struct {
	Tool       Tool
	Platform   platform.Platform
	Filename   string // e.g. "hal-linux-x86_64"
	Repository Repository
	URL        string // resolved download URL
}

// InstallResult contains information about a completed install
type InstallResult struct {
	Artifact Artifact
	Path     string // final binary path
	Strategy string // name of the transfer used
	Duration time.Duration
}

// ErrNoHTTPClient is returned when none of the supported HTTP clients is
// present on the host.
var ErrNoHTTPClient = errors.New("no supported HTTP client found (install curl or wget)")

// TransferError represents a failed download
type TransferError struct {
	URL      string
	Strategy string
	Cause    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed (%s via %s): %v", e.URL, e.Strategy, e.Cause)
}

func (e *TransferError) Unwrap() error {
	return e.Cause
}

// FilesystemError represents a failure creating directories or placing the
// binary
type FilesystemError struct {
	Op    string
	Path  string
	Cause error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error (%s): %s: %v", e.Path, e.Op, e.Cause)
}

func (e *FilesystemError) Unwrap() error {
	return e.Cause
}
