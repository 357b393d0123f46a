// Package syscheck validates host prerequisites before a build is
// attempted.
package syscheck

import (
	"fmt"
	"os"
	"os/exec"
)

// Config selects which prerequisites apply to this run.
type Config struct {
	ASIC        bool   // hardware build: kernel headers must be present
	KernelDir   string // explicit kernel headers dir; empty means default
	RequireRoot bool   // dependency install runs: root or sudo must be available
}

// Result describes the outcome of the system check.
type Result struct {
	Passed bool
	Issues []string
}

// Inspector models host interrogation, allowing tests to stub.
type Inspector interface {
	PathExists(path string) bool
	OSRelease() (string, error)
	IsRoot() bool
	SudoAvailable() bool
}

// HostInspector interrogates the running host.
type HostInspector struct{}

// PathExists reports whether path exists.
func (HostInspector) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// OSRelease returns the contents of /etc/os-release.
func (HostInspector) OSRelease() (string, error) {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// IsRoot reports whether the process runs with root privileges.
func (HostInspector) IsRoot() bool { return os.Geteuid() == 0 }

// SudoAvailable reports whether a sudo binary is on PATH.
func (HostInspector) SudoAvailable() bool {
	_, err := exec.LookPath("sudo")
	return err == nil
}

const defaultKernelHeadersDir = "/lib/modules"

// Check validates host prerequisites and returns all found issues at once
// rather than stopping at the first.
func Check(cfg Config, sys Inspector) Result {
	if sys == nil {
		sys = HostInspector{}
	}

	var issues []string

	if _, err := sys.OSRelease(); err != nil {
		issues = append(issues, fmt.Sprintf("cannot identify operating system: %v", err))
	}

	if cfg.ASIC {
		kdir := cfg.KernelDir
		if kdir == "" {
			kdir = defaultKernelHeadersDir
		}
		if !sys.PathExists(kdir) {
			issues = append(issues, fmt.Sprintf("kernel headers dir missing: %s", kdir))
		}
	}

	if cfg.RequireRoot && !sys.IsRoot() && !sys.SudoAvailable() {
		issues = append(issues, "dependency installation needs root privileges or sudo")
	}

	return Result{Passed: len(issues) == 0, Issues: issues}
}
