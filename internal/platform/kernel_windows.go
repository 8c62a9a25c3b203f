//go:build windows

package platform

// kernelName returns the kernel name native Windows reports in %OS%.
func kernelName() (string, error) {
	return "Windows_NT", nil
}
