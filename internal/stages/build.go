package stages

import (
	"context"
	"fmt"

	"github.com/sdefoundry/sdectl/internal/plan"
	"github.com/sdefoundry/sdectl/internal/workspace"
)

// Builder drives the external build toolchain.
type Builder struct {
	Runner    Runner
	Workspace *workspace.Workspace
}

// Build compiles and installs the configured targets.
func (b *Builder) Build(ctx context.Context, args plan.BuildArgs) error {
	argv := []string{fmt.Sprintf("-j%d", args.Jobs)}
	argv = append(argv, args.Targets...)
	if err := b.Runner.Run(ctx, b.Workspace.BuildDir, "make", argv...); err != nil {
		return err
	}
	return b.Runner.Run(ctx, b.Workspace.BuildDir, "make", "install")
}
