// Package ui prints installer progress for a human reading a terminal.
//
// Output is coloured only when the destination is a terminal. Nothing here
// is a machine-readable contract.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes status lines to an io.Writer.
// It also satisfies the binary.Logger interface: Info, Warn and Error
// events are printed as detail lines and Debug events are dropped.
type Printer struct {
	out   io.Writer
	color bool
}

// New creates a Printer for out, enabling colour when out is a terminal.
func New(out io.Writer) *Printer {
	return &Printer{out: out, color: isTerminal(out)}
}

// NewPlain creates a Printer that never emits colour codes.
func NewPlain(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Step prints a top-level progress line.
func (p *Printer) Step(text string) {
	fmt.Fprintln(p.out, p.paint(" •", color.FgBlue), p.paint(text, color.FgHiBlack))
}

// Detail prints an indented line under the current step.
func (p *Printer) Detail(text string) {
	fmt.Fprintln(p.out, p.paint("   └", color.FgHiBlack), p.paint(text, color.FgHiBlack))
}

// Success prints a completed result.
func (p *Printer) Success(text string) {
	fmt.Fprintln(p.out, p.paint(" ✔ "+text, color.FgGreen))
}

// Failure prints a failed result.
func (p *Printer) Failure(text string) {
	fmt.Fprintln(p.out, p.paint(" ✘ "+text, color.FgRed))
}

// Warning prints a non-fatal notice.
func (p *Printer) Warning(text string) {
	fmt.Fprintln(p.out, p.paint(" ! "+text, color.FgYellow))
}

// Code prints a copy-pasteable snippet.
func (p *Printer) Code(text string) {
	fmt.Fprintln(p.out, "     "+p.paint(text, color.FgCyan))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

func (p *Printer) Debug(msg string, keysAndValues ...interface{}) {}

func (p *Printer) Info(msg string, keysAndValues ...interface{}) {
	p.Detail(formatEvent(msg, keysAndValues))
}

func (p *Printer) Warn(msg string, keysAndValues ...interface{}) {
	fmt.Fprintln(p.out, p.paint("   └", color.FgHiBlack), p.paint(formatEvent(msg, keysAndValues), color.FgYellow))
}

func (p *Printer) Error(msg string, keysAndValues ...interface{}) {
	fmt.Fprintln(p.out, p.paint("   └", color.FgHiBlack), p.paint(formatEvent(msg, keysAndValues), color.FgRed))
}

func (p *Printer) paint(text string, attr color.Attribute) string {
	c := color.New(attr)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// formatEvent renders msg followed by key=value pairs.
// A trailing key without a value is printed as key=?.
func formatEvent(msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	b.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		b.WriteString(" ")
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, "%v=?", keysAndValues[i])
		}
	}

	return b.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
