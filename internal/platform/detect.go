package platform

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector by querying the running machine.
type RealDetector struct {
	kernelName  func() (string, error)
	machineName func() (string, error)
}

// NewDetector creates a new host detector.
func NewDetector() Detector {
	return &RealDetector{
		kernelName:  kernelName,
		machineName: host.KernelArch,
	}
}

// Detect reads the kernel name and the machine hardware name.
// Neither value is normalized here; see Resolve.
func (d *RealDetector) Detect(ctx context.Context) (Host, error) {
	if err := ctx.Err(); err != nil {
		return Host{}, fmt.Errorf("host detection cancelled: %w", err)
	}

	osName, err := d.kernelName()
	if err != nil {
		return Host{}, fmt.Errorf("read kernel name: %w", err)
	}

	arch, err := d.machineName()
	if err != nil {
		return Host{}, fmt.Errorf("read machine name: %w", err)
	}

	return Host{OS: osName, Arch: arch}, nil
}
