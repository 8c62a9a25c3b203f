package shell

import "path/filepath"

// CheckPath reports whether targetDir is an exact entry of pathValue.
// pathValue is split on os.PathListSeparator.
func CheckPath(targetDir, pathValue string) PathStatus {
	if targetDir == "" {
		return NotOnPath
	}

	for _, entry := range filepath.SplitList(pathValue) {
		if entry == targetDir {
			return AlreadyOnPath
		}
	}
	return NotOnPath
}
