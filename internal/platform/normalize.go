package platform

import "strings"

// osTable maps exact kernel names to normalized OS names.
var osTable = map[string]OS{
	"Linux":  OSLinux,
	"Darwin": OSMacOS,
}

// windowsKernels lists the kernel names reported by Windows and its
// compatibility layers. MSYS2, MinGW and Cygwin append "-<windows version>",
// which is cut before the lookup.
var windowsKernels = map[string]bool{
	"Windows_NT": true,
	"MINGW32_NT": true,
	"MINGW64_NT": true,
	"MSYS_NT":    true,
	"CYGWIN_NT":  true,
}

// archTable maps exact machine names to normalized architecture names.
var archTable = map[string]Arch{
	"x86_64":  ArchX8664,
	"amd64":   ArchX8664,
	"aarch64": ArchAArch64,
	"arm64":   ArchAArch64,
}

// Resolve maps a raw host descriptor onto the support matrix.
// It never defaults: unmatched input returns *UnsupportedPlatformError.
func Resolve(host Host) (Platform, error) {
	osName, err := resolveOS(host.OS)
	if err != nil {
		return Platform{}, err
	}

	arch, err := resolveArch(host.Arch)
	if err != nil {
		return Platform{}, err
	}

	return Platform{OS: osName, Arch: arch}, nil
}

func resolveOS(raw string) (OS, error) {
	if name, ok := osTable[raw]; ok {
		return name, nil
	}

	base, _, _ := strings.Cut(raw, "-")
	if windowsKernels[base] {
		return OSWindows, nil
	}

	return "", &UnsupportedPlatformError{Field: "os", Value: raw}
}

func resolveArch(raw string) (Arch, error) {
	if arch, ok := archTable[raw]; ok {
		return arch, nil
	}
	return "", &UnsupportedPlatformError{Field: "arch", Value: raw}
}
