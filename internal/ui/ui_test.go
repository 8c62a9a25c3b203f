package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestPrinter_Plain(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"step", func(p *Printer) { p.Step("Detecting platform") }, " • Detecting platform\n"},
		{"detail", func(p *Printer) { p.Detail("linux/x86_64") }, "   └ linux/x86_64\n"},
		{"success", func(p *Printer) { p.Success("Installed") }, " ✔ Installed\n"},
		{"failure", func(p *Printer) { p.Failure("boom") }, " ✘ boom\n"},
		{"warning", func(p *Printer) { p.Warning("not on PATH") }, " ! not on PATH\n"},
		{"code", func(p *Printer) { p.Code("export PATH") }, "     export PATH\n"},
		{"blank", func(p *Printer) { p.Blank() }, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPlain(&buf))
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinter_NonTerminalHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success("done")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected escape codes in %q", buf.String())
	}
}

func TestPrinter_ColorWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{out: &buf, color: true}
	p.Success("done")

	if !strings.Contains(buf.String(), "\x1b[32m") {
		t.Errorf("expected green escape code in %q", buf.String())
	}
}

func TestPrinter_Logger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)

	p.Debug("hidden", "k", "v")
	p.Info("downloading", "url", "https://example.com/hal", "via", "curl")
	p.Warn("slow")
	p.Error("failed", "code", 22, "dangling")

	want := "   └ downloading url=https://example.com/hal via=curl\n" +
		"   └ slow\n" +
		"   └ failed code=22 dangling=?\n"
	if buf.String() != want {
		t.Errorf("output:\ngot:  %q\nwant: %q", buf.String(), want)
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
