package binary

import (
	"fmt"

	"github.com/fairhill1/hal-install/internal/platform"
)

// BuildReference constructs the artifact filename and download URL for a
// platform.
// Pattern: https://{host}/{owner}/{name}/releases/latest/download/{tool}-{os}-{arch}[.exe]
func BuildReference(tool Tool, repo Repository, plat platform.Platform) Artifact {
	filename := artifactFilename(tool, plat)

	return Artifact{
		Tool:       tool,
		Platform:   plat,
		Filename:   filename,
		Repository: repo,
		URL: fmt.Sprintf("https://%s/%s/%s/releases/latest/download/%s",
			repo.Host, repo.Owner, repo.Name, filename),
	}
}

// artifactFilename returns {tool}-{os}-{arch}, with .exe on Windows only
func artifactFilename(tool Tool, plat platform.Platform) string {
	name := fmt.Sprintf("%s-%s-%s", tool, plat.OS, plat.Arch)
	if plat.IsWindows() {
		name += ".exe"
	}
	return name
}
