package binary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fairhill1/hal-install/internal/platform"
)

// InstallDirRel is the install directory relative to the user's home
const InstallDirRel = ".local/bin"

// Manager orchestrates locating, fetching, and installing a binary
type Manager struct {
	installDir string
	tool       Tool
	repo       Repository
	transfer   Transfer
	fetcher    *Fetcher
	logger     Logger
	removeAll  func(path string) error
}

// Config holds configuration for the binary manager
type Config struct {
	// HomeDir is the user's home directory; the binary goes to HomeDir/.local/bin
	HomeDir string
	// Tool is the binary to install (default: ToolHal)
	Tool Tool
	// Repository is where releases are published (default: DefaultRepository)
	Repository Repository
	// Transfer is the selected HTTP client strategy
	Transfer Transfer
	// Logger receives progress events (default: no-op)
	Logger Logger
}

// NewManager creates a new binary manager
func NewManager(config Config) (*Manager, error) {
	if config.HomeDir == "" {
		return nil, fmt.Errorf("HomeDir is required")
	}

	if config.Transfer == nil {
		return nil, ErrNoHTTPClient
	}

	if config.Tool == "" {
		config.Tool = ToolHal
	}
	if config.Repository == (Repository{}) {
		config.Repository = DefaultRepository
	}
	if config.Logger == nil {
		config.Logger = defaultLogger()
	}

	return &Manager{
		installDir: filepath.Join(config.HomeDir, filepath.FromSlash(InstallDirRel)),
		tool:       config.Tool,
		repo:       config.Repository,
		transfer:   config.Transfer,
		fetcher:    NewFetcher(config.Transfer, config.Logger),
		logger:     config.Logger,
		removeAll:  os.RemoveAll,
	}, nil
}

// InstallDir returns the directory the binary is installed into
func (m *Manager) InstallDir() string {
	return m.installDir
}

// BinaryPath returns the filesystem path of the installed binary
func (m *Manager) BinaryPath() string {
	return filepath.Join(m.installDir, m.tool.String())
}

// Artifact returns the release artifact for a platform
func (m *Manager) Artifact(plat platform.Platform) Artifact {
	return BuildReference(m.tool, m.repo, plat)
}

// Install downloads the artifact for plat and installs it at BinaryPath.
// The install directory is only created once the download has succeeded.
func (m *Manager) Install(ctx context.Context, plat platform.Platform) (*InstallResult, error) {
	startTime := time.Now()
	artifact := m.Artifact(plat)

	stageDir, err := os.MkdirTemp("", "hal-install-*")
	if err != nil {
		return nil, &FilesystemError{Op: "create staging dir", Path: os.TempDir(), Cause: err}
	}
	defer m.cleanupStaging(stageDir)

	m.logger.Info("downloading", "url", artifact.URL, "via", m.transfer.Name())

	stagedPath := filepath.Join(stageDir, artifact.Filename)
	if err := m.fetcher.Fetch(ctx, artifact.URL, stagedPath); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", artifact.Filename, err)
	}

	m.logger.Debug("installing", "staged", stagedPath, "dir", m.installDir)

	path, err := Install(stagedPath, m.installDir, m.tool)
	if err != nil {
		return nil, fmt.Errorf("install %s: %w", m.tool, err)
	}

	result := &InstallResult{
		Artifact: artifact,
		Path:     path,
		Strategy: m.transfer.Name(),
		Duration: time.Since(startTime),
	}

	m.logger.Info("installed", "path", path, "took", result.Duration.Round(time.Millisecond))
	return result, nil
}

// cleanupStaging removes the staging dir. A leftover dir under the system
// temp dir does not affect the install, so failure is only reported.
func (m *Manager) cleanupStaging(stageDir string) {
	if err := m.removeAll(stageDir); err != nil {
		m.logger.Warn("could not remove staging dir", "path", stageDir, "err", err)
	}
}
