package stages

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/sdefoundry/sdectl/internal/plan"
	"github.com/sdefoundry/sdectl/internal/workspace"
)

// SourceDependency is a third-party package built from a pinned git tag
// and installed into the workspace prefix.
type SourceDependency struct {
	Name    string
	Repo    string
	Version string // pinned version; the git tag is "V" + Version
}

// Artifact returns the versioned shared-library path under prefix whose
// presence marks the dependency as installed.
func (d SourceDependency) Artifact(prefix string) string {
	return filepath.Join(prefix, "lib", fmt.Sprintf("lib%s.so.%s", d.Name, d.Version))
}

// sourceDependencies are the packages not available from OS repositories.
var sourceDependencies = []SourceDependency{
	{Name: "cli", Repo: "https://github.com/dparrish/libcli", Version: "1.10.7"},
}

// Installer installs build dependencies into the workspace prefix.
type Installer struct {
	Runner    Runner
	Workspace *workspace.Workspace
	Sudo      bool // prepend sudo to commands that need elevated rights
	Force     bool // rebuild even when the artifact is already installed
}

// Install brings all source dependencies to their pinned versions.
func (i *Installer) Install(ctx context.Context, args plan.InstallArgs) error {
	for _, dep := range sourceDependencies {
		if err := i.installSource(ctx, dep, args.Jobs); err != nil {
			return fmt.Errorf("failed to install %s: %w", dep.Name, err)
		}
	}
	return nil
}

func (i *Installer) installSource(ctx context.Context, dep SourceDependency, jobs int) error {
	pinned, err := semver.NewVersion(dep.Version)
	if err != nil {
		return fmt.Errorf("invalid pinned version %q: %w", dep.Version, err)
	}

	if !i.Force && i.isInstalled(dep, pinned) {
		slog.Info("source dependency already installed", "name", dep.Name, "version", dep.Version)
		return nil
	}

	if err := os.MkdirAll(i.Workspace.DownloadsDir, 0o755); err != nil {
		return err
	}
	repoDir := filepath.Join(i.Workspace.DownloadsDir, "lib"+dep.Name)
	if _, statErr := os.Stat(repoDir); os.IsNotExist(statErr) {
		if err := i.Runner.Run(ctx, i.Workspace.DownloadsDir, "git", "clone", dep.Repo, repoDir); err != nil {
			return err
		}
		if err := i.Runner.Run(ctx, repoDir, "git", "-c", "advice.detachedHead=false", "checkout", "V"+dep.Version); err != nil {
			return err
		}
	}

	if err := i.Runner.Run(ctx, repoDir, "make", fmt.Sprintf("-j%d", jobs)); err != nil {
		return err
	}
	if err := i.Runner.Run(ctx, repoDir, "make", "PREFIX="+i.Workspace.InstallPrefix, "install", fmt.Sprintf("-j%d", jobs)); err != nil {
		return err
	}
	return i.run(ctx, i.Workspace.Root, "ldconfig")
}

// isInstalled reports whether the exact pinned artifact, or a newer one,
// already exists under the install prefix.
func (i *Installer) isInstalled(dep SourceDependency, pinned *semver.Version) bool {
	if _, err := os.Stat(dep.Artifact(i.Workspace.InstallPrefix)); err == nil {
		return true
	}

	pattern := filepath.Join(i.Workspace.InstallPrefix, "lib", "lib"+dep.Name+".so.*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return false
	}
	for _, match := range matches {
		raw := strings.TrimPrefix(filepath.Base(match), "lib"+dep.Name+".so.")
		installed, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if !installed.LessThan(pinned) {
			return true
		}
	}
	return false
}

// run executes a command, prepending sudo when configured.
func (i *Installer) run(ctx context.Context, dir, name string, args ...string) error {
	if i.Sudo {
		return i.Runner.Run(ctx, dir, "sudo", append([]string{name}, args...)...)
	}
	return i.Runner.Run(ctx, dir, name, args...)
}
