package stages

import (
	"context"
	"strings"

	"github.com/sdefoundry/sdectl/internal/plan"
	"github.com/sdefoundry/sdectl/internal/workspace"
)

// Configurator drives the external configuration toolchain with the
// resolved option set.
type Configurator struct {
	Runner    Runner
	Workspace *workspace.Workspace
}

// Configure invokes the SDE configure tool. The toolchain itself is a
// black box; this stage only translates plan arguments into its CLI.
func (c *Configurator) Configure(ctx context.Context, args plan.ConfigureArgs) error {
	argv := append([]string{}, args.Options...)
	if args.SwitchProfile != "" {
		argv = append(argv, "--switch-profile="+args.SwitchProfile)
	}
	if args.BSPPath != "" {
		argv = append(argv, "--bsp-path="+args.BSPPath)
	}
	if len(args.P4Examples) > 0 {
		argv = append(argv, "--p4-examples="+strings.Join(args.P4Examples, ","))
	}
	return c.Runner.Run(ctx, c.Workspace.Root, "./tools/configure", argv...)
}
