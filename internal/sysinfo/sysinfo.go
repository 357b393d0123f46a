// Package sysinfo probes host memory and CPU capacity. The probe is a
// point-in-time read taken at planning time, not a live resource monitor.
package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/prometheus/procfs"
)

// Prober reports host capacity. Implementations other than Host exist for
// tests.
type Prober interface {
	TotalMemoryMB() (int, error)
	CPUCount() int
}

// Host probes the running machine via /proc.
type Host struct{}

// TotalMemoryMB returns MemTotal from /proc/meminfo in megabytes.
func (Host) TotalMemoryMB() (int, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return 0, fmt.Errorf("failed to open procfs: %w", err)
	}
	mi, err := fs.Meminfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read meminfo: %w", err)
	}
	if mi.MemTotal == nil {
		return 0, fmt.Errorf("meminfo has no MemTotal entry")
	}
	return int(*mi.MemTotal / 1024), nil
}

// CPUCount returns the number of logical CPUs.
func (Host) CPUCount() int {
	return runtime.NumCPU()
}

// Static is a fixed-capacity prober for tests and dry runs.
type Static struct {
	MemoryMB int
	CPUs     int
}

func (s Static) TotalMemoryMB() (int, error) { return s.MemoryMB, nil }

func (s Static) CPUCount() int { return s.CPUs }
