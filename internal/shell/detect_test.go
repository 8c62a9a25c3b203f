package shell

import "testing"

func TestParseShell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ShellType
	}{
		{"bash", "/bin/bash", ShellBash},
		{"zsh", "/usr/bin/zsh", ShellZsh},
		{"fish", "/usr/local/bin/fish", ShellFish},
		{"homebrew zsh", "/opt/homebrew/bin/zsh", ShellZsh},
		{"uppercase", "/bin/BASH", ShellBash},
		{"git bash exe", `C:\Program Files\Git\bin\bash.exe`, ShellBash},
		{"msys zsh mixed separators", `C:\msys64/usr/bin/zsh.exe`, ShellZsh},
		{"bare name", "fish", ShellFish},
		{"trailing separator", "/bin/bash/", ShellUnknown},
		{"ksh", "/bin/ksh", ShellUnknown},
		{"sh", "/bin/sh", ShellUnknown},
		{"empty", "", ShellUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseShell(tt.input); got != tt.want {
				t.Errorf("ParseShell(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateShell(t *testing.T) {
	for _, s := range []ShellType{ShellBash, ShellZsh, ShellFish} {
		if err := ValidateShell(s); err != nil {
			t.Errorf("ValidateShell(%s) error = %v", s, err)
		}
	}

	err := ValidateShell(ShellUnknown)
	if err == nil {
		t.Fatal("ValidateShell(unknown) should fail")
	}
	if _, ok := err.(*UnsupportedShellError); !ok {
		t.Errorf("error type = %T, want *UnsupportedShellError", err)
	}
}
