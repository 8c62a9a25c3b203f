package binary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Fetcher downloads artifacts without ever exposing a partial file at the
// destination path
type Fetcher struct {
	transfer Transfer
	logger   Logger
}

// NewFetcher creates a fetcher using the given strategy
func NewFetcher(transfer Transfer, logger Logger) *Fetcher {
	if logger == nil {
		logger = defaultLogger()
	}
	return &Fetcher{
		transfer: transfer,
		logger:   logger,
	}
}

// Fetch downloads url to destPath with a single attempt.
// The transfer writes into a temporary file in the same directory, which is
// renamed onto destPath only after the transfer succeeded.
func (f *Fetcher) Fetch(ctx context.Context, url, destPath string) error {
	if f.transfer == nil {
		return ErrNoHTTPClient
	}

	destDir := filepath.Dir(destPath)
	tmpFile, err := os.CreateTemp(destDir, "."+filepath.Base(destPath)+".download-*")
	if err != nil {
		return &FilesystemError{Op: "create temp file", Path: destDir, Cause: err}
	}
	tmpPath := tmpFile.Name()

	// Track whether we need to clean up the temp file
	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	// The client reopens the path; only the name is needed here
	if err := tmpFile.Close(); err != nil {
		return &FilesystemError{Op: "close temp file", Path: tmpPath, Cause: err}
	}

	f.logger.Debug("transfer started", "url", url, "strategy", f.transfer.Name(), "temp", tmpPath)

	if err := f.transfer.Transfer(ctx, url, tmpPath); err != nil {
		return &TransferError{URL: url, Strategy: f.transfer.Name(), Cause: err}
	}

	// A cancelled context may race a client that already exited cleanly
	if err := ctx.Err(); err != nil {
		return &TransferError{URL: url, Strategy: f.transfer.Name(), Cause: err}
	}

	info, err := os.Stat(tmpPath)
	if err != nil {
		return &TransferError{URL: url, Strategy: f.transfer.Name(), Cause: fmt.Errorf("stat download: %w", err)}
	}
	if info.Size() == 0 {
		return &TransferError{URL: url, Strategy: f.transfer.Name(), Cause: fmt.Errorf("empty response body")}
	}

	// Atomic rename
	if err := os.Rename(tmpPath, destPath); err != nil {
		return &FilesystemError{Op: "rename temp file", Path: destPath, Cause: err}
	}

	cleanupNeeded = false
	f.logger.Debug("transfer finished", "path", destPath, "bytes", info.Size())
	return nil
}
