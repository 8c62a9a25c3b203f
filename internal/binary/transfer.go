package binary

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Transfer downloads a URL to a local file using one HTTP client.
// Implementations must exit with an error on any non-2xx response and must
// not print anything on success.
type Transfer interface {
	// Name returns a short human-readable name for the strategy
	Name() string
	// Command returns the executable the strategy needs on PATH
	Command() string
	// Transfer downloads url into destPath
	Transfer(ctx context.Context, url, destPath string) error
}

// LookPathFunc resolves an executable name, like exec.LookPath
type LookPathFunc func(file string) (string, error)

// DefaultTransfers returns the supported strategies in priority order
func DefaultTransfers() []Transfer {
	return []Transfer{NewCurlTransfer(), NewWgetTransfer()}
}

// SelectTransfer returns the first candidate whose command is available.
// Candidates are probed for presence only; a selected strategy that later
// fails is not retried with the next one.
func SelectTransfer(lookPath LookPathFunc, candidates ...Transfer) (Transfer, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	for _, candidate := range candidates {
		if _, err := lookPath(candidate.Command()); err == nil {
			return candidate, nil
		}
	}

	return nil, ErrNoHTTPClient
}

// CurlTransfer downloads with curl
type CurlTransfer struct {
	command string
}

// NewCurlTransfer creates a curl strategy
func NewCurlTransfer() *CurlTransfer {
	return &CurlTransfer{command: "curl"}
}

func (c *CurlTransfer) Name() string    { return "curl" }
func (c *CurlTransfer) Command() string { return c.command }

// Transfer runs curl with --fail so HTTP errors exit non-zero (22) instead
// of saving the error page, and --location to follow release redirects.
func (c *CurlTransfer) Transfer(ctx context.Context, url, destPath string) error {
	cmd := exec.CommandContext(ctx, c.command,
		"--fail",
		"--silent",
		"--show-error",
		"--location",
		"--output", destPath,
		url,
	)
	return runQuiet(cmd)
}

// WgetTransfer downloads with wget
type WgetTransfer struct {
	command string
}

// NewWgetTransfer creates a wget strategy
func NewWgetTransfer() *WgetTransfer {
	return &WgetTransfer{command: "wget"}
}

func (w *WgetTransfer) Name() string    { return "wget" }
func (w *WgetTransfer) Command() string { return w.command }

// Transfer runs wget quietly. wget follows redirects and exits non-zero
// (8) on HTTP errors by default.
func (w *WgetTransfer) Transfer(ctx context.Context, url, destPath string) error {
	cmd := exec.CommandContext(ctx, w.command,
		"--quiet",
		"--output-document="+destPath,
		url,
	)
	return runQuiet(cmd)
}

// runQuiet runs cmd, keeping its stderr for the error message only
func runQuiet(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", cmd.Args[0], err, msg)
		}
		return fmt.Errorf("%s: %w", cmd.Args[0], err)
	}
	return nil
}
