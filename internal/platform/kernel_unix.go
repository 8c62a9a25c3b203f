//go:build unix

package platform

import "golang.org/x/sys/unix"

// kernelName returns the uname(2) sysname, the value `uname -s` prints.
func kernelName() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Sysname[:]), nil
}
