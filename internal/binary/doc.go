// Package binary resolves, downloads, and installs the hal release binary.
//
// # Pipeline
//
// The package covers three steps of the installer:
//   - Locator: BuildReference turns a normalized platform into the release
//     artifact filename and its "latest release" download URL
//   - Fetcher: downloads the artifact using the first HTTP client found on
//     the host (curl, then wget)
//   - Installer: places the binary at a fixed path and marks it executable
//
// Manager wires them together for a single run.
//
// # No Partial Installs
//
// Nothing is ever written to the final binary path until a transfer has
// completed successfully:
//   - transfers stream into a temporary file that is renamed on success
//     and removed on failure
//   - the install step copies the staged file into a temporary file inside
//     the install directory, sets the mode, and renames it into place
//
// A failed or interrupted run leaves any previous install untouched.
//
// # Usage
//
//	transfer, err := binary.SelectTransfer(exec.LookPath, binary.DefaultTransfers()...)
//	if err != nil {
//	    return err // binary.ErrNoHTTPClient
//	}
//
//	mgr, err := binary.NewManager(binary.Config{
//	    HomeDir:  home,
//	    Transfer: transfer,
//	})
//	if err != nil {
//	    return err
//	}
//
//	result, err := mgr.Install(ctx, plat)
//
// The artifact is not verified; releases are trusted as served by GitHub.
package binary
