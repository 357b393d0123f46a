// Package stages drives the external collaborators of a profile apply:
// the dependency installer, the configurator and the builder. Each stage
// shells out to external tools and fails the whole sequence on the first
// non-zero exit.
package stages

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner executes one external command in a working directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands on the host, streaming output to the attached
// writers.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and logs its invocation and duration.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	slog.Debug("running command", "dir", dir, "command", name+" "+strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	start := time.Now()
	err := cmd.Run()
	slog.Debug("command finished", "command", name, "duration", time.Since(start), "error", err)
	return err
}

// ExitCode extracts the process exit code from a command error, or -1 when
// the command did not run to completion.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
