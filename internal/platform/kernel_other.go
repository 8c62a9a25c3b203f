//go:build !unix && !windows

package platform

import (
	"fmt"
	"runtime"
)

func kernelName() (string, error) {
	return "", fmt.Errorf("kernel name not available on %s", runtime.GOOS)
}
