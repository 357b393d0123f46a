package stages

import (
	"context"

	"github.com/sdefoundry/sdectl/internal/apperrors"
	"github.com/sdefoundry/sdectl/internal/plan"
	"github.com/sdefoundry/sdectl/internal/ui"
)

// DependencyInstaller installs required third-party packages.
type DependencyInstaller interface {
	Install(ctx context.Context, args plan.InstallArgs) error
}

// ConfigureStage runs the configuration toolchain.
type ConfigureStage interface {
	Configure(ctx context.Context, args plan.ConfigureArgs) error
}

// BuildStage runs the build toolchain.
type BuildStage interface {
	Build(ctx context.Context, args plan.BuildArgs) error
}

// Orchestrator sequences install, configure and build for a resolved plan,
// stopping at the first failing stage. Every phase is preceded by a
// separator and a banner so failures can be attributed from the output.
type Orchestrator struct {
	Installer    DependencyInstaller
	Configurator ConfigureStage
	Builder      BuildStage
	Printer      ui.Printer
}

// Execute runs the plan. No stage is retried and no later stage runs after
// a failure.
func (o *Orchestrator) Execute(ctx context.Context, p *plan.Plan, skipDependencies bool) error {
	o.Printer.Separator()
	p.DescribeProfile(o.Printer.W)
	o.Printer.Separator()

	if !skipDependencies {
		o.Printer.Green("Installing dependencies...")
		if err := o.Installer.Install(ctx, p.DependenciesInstallArgs()); err != nil {
			return apperrors.NewStageError("dependencies", ExitCode(err), err)
		}
		o.Printer.Separator()
	}

	o.Printer.Green("Configuring build...")
	if err := o.Configurator.Configure(ctx, p.ConfigureArgs()); err != nil {
		return apperrors.NewStageError("configure", ExitCode(err), err)
	}
	o.Printer.Separator()

	o.Printer.Green("Building...")
	if err := o.Builder.Build(ctx, p.BuildArgs()); err != nil {
		return apperrors.NewStageError("build", ExitCode(err), err)
	}
	return nil
}
