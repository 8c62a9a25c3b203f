package platform

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		host Host
		want Platform
	}{
		{"linux x86_64", Host{OS: "Linux", Arch: "x86_64"}, Platform{OSLinux, ArchX8664}},
		{"linux amd64", Host{OS: "Linux", Arch: "amd64"}, Platform{OSLinux, ArchX8664}},
		{"linux aarch64", Host{OS: "Linux", Arch: "aarch64"}, Platform{OSLinux, ArchAArch64}},
		{"darwin arm64", Host{OS: "Darwin", Arch: "arm64"}, Platform{OSMacOS, ArchAArch64}},
		{"darwin x86_64", Host{OS: "Darwin", Arch: "x86_64"}, Platform{OSMacOS, ArchX8664}},
		{"mingw64", Host{OS: "MINGW64_NT-10.0-19045", Arch: "x86_64"}, Platform{OSWindows, ArchX8664}},
		{"mingw32", Host{OS: "MINGW32_NT-6.1", Arch: "x86_64"}, Platform{OSWindows, ArchX8664}},
		{"msys", Host{OS: "MSYS_NT-10.0-22631", Arch: "x86_64"}, Platform{OSWindows, ArchX8664}},
		{"cygwin", Host{OS: "CYGWIN_NT-10.0", Arch: "x86_64"}, Platform{OSWindows, ArchX8664}},
		{"native windows arm64", Host{OS: "Windows_NT", Arch: "arm64"}, Platform{OSWindows, ArchAArch64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.host)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	tests := []struct {
		name      string
		host      Host
		wantField string
		wantValue string
	}{
		{"sunos", Host{OS: "SunOS", Arch: "x86_64"}, "os", "SunOS"},
		{"freebsd", Host{OS: "FreeBSD", Arch: "amd64"}, "os", "FreeBSD"},
		{"lowercase linux", Host{OS: "linux", Arch: "x86_64"}, "os", "linux"},
		{"padded linux", Host{OS: " Linux", Arch: "x86_64"}, "os", " Linux"},
		{"empty os", Host{OS: "", Arch: "x86_64"}, "os", ""},
		{"mingw prefix only", Host{OS: "MINGW", Arch: "x86_64"}, "os", "MINGW"},
		{"linux with suffix", Host{OS: "Linux-6.1", Arch: "x86_64"}, "os", "Linux-6.1"},
		{"i686", Host{OS: "Linux", Arch: "i686"}, "arch", "i686"},
		{"armv7l", Host{OS: "Linux", Arch: "armv7l"}, "arch", "armv7l"},
		{"uppercase arch", Host{OS: "Darwin", Arch: "ARM64"}, "arch", "ARM64"},
		{"empty arch", Host{OS: "Darwin", Arch: ""}, "arch", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.host)
			if err == nil {
				t.Fatalf("Resolve() = %v, want error", got)
			}

			var unsupported *UnsupportedPlatformError
			if !errors.As(err, &unsupported) {
				t.Fatalf("error type = %T, want *UnsupportedPlatformError", err)
			}
			if unsupported.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", unsupported.Field, tt.wantField)
			}
			if unsupported.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", unsupported.Value, tt.wantValue)
			}
			if got != (Platform{}) {
				t.Errorf("Resolve() returned %v alongside error, want zero value", got)
			}
		})
	}
}

func TestUnsupportedPlatformError_Message(t *testing.T) {
	err := &UnsupportedPlatformError{Field: "os", Value: "SunOS"}
	want := `unsupported platform: os="SunOS"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestPlatform_String(t *testing.T) {
	p := Platform{OS: OSMacOS, Arch: ArchAArch64}
	if p.String() != "macos/aarch64" {
		t.Errorf("String() = %q, want %q", p.String(), "macos/aarch64")
	}
	if p.IsWindows() {
		t.Error("IsWindows() = true for macos")
	}
	if !(Platform{OS: OSWindows, Arch: ArchX8664}).IsWindows() {
		t.Error("IsWindows() = false for windows")
	}
}
