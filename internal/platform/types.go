// Package platform resolves the host's raw kernel and machine names into the
// normalized (os, arch) pair used to name hal release artifacts.
//
// Detection reads uname(2) on Unix hosts and uses gopsutil for the machine
// hardware name. Resolution is a pure exact-match lookup against a fixed
// support matrix; anything outside it is a hard failure that surfaces the
// raw value.
package platform

import (
	"context"
	"fmt"
)

// OS is a normalized operating system name as used in artifact filenames.
type OS string

const (
	OSLinux   OS = "linux"
	OSMacOS   OS = "macos"
	OSWindows OS = "windows"
)

// Arch is a normalized CPU architecture name as used in artifact filenames.
type Arch string

const (
	ArchX8664   Arch = "x86_64"
	ArchAArch64 Arch = "aarch64"
)

// Host contains the raw platform identity reported by the machine.
type Host struct {
	OS   string // kernel name, e.g. "Linux", "Darwin", "MINGW64_NT-10.0-19045"
	Arch string // machine hardware name, e.g. "x86_64", "arm64"
}

// Platform is the canonical (os, arch) pair understood by the release matrix.
type Platform struct {
	OS   OS
	Arch Arch
}

// String returns the platform as "os/arch".
func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}

// IsWindows returns true if the platform is Windows.
func (p Platform) IsWindows() bool {
	return p.OS == OSWindows
}

// UnsupportedPlatformError reports a raw OS or architecture value outside the
// support matrix.
type UnsupportedPlatformError struct {
	Field string // "os" or "arch"
	Value string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s=%q", e.Field, e.Value)
}

// Detector is the interface for host detection.
type Detector interface {
	Detect(ctx context.Context) (Host, error)
}
