// Package plan resolves a profile and runtime overrides into the concrete
// argument bundles consumed by the install, configure and build stages.
package plan

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sdefoundry/sdectl/internal/profile"
)

// Plan is the resolved combination of a profile and runtime overrides.
// It is a single-construction value object; the profile is treated as
// read-only once the plan is built.
type Plan struct {
	Profile *profile.Profile
	BSPPath string // effective path: override wins over the profile's
	Jobs    int
}

// New builds a plan. bspOverride, when non-empty, takes precedence over
// the profile's own BSP path.
func New(p *profile.Profile, bspOverride string, jobs int) *Plan {
	bsp := p.BSPPath
	if bspOverride != "" {
		bsp = bspOverride
	}
	return &Plan{Profile: p, BSPPath: bsp, Jobs: jobs}
}

// InstallArgs parameterizes the dependency installation stage.
type InstallArgs struct {
	Jobs    int
	BSPPath string
}

// ConfigureArgs parameterizes the configuration stage.
type ConfigureArgs struct {
	Options       []string // enabled option names, profile insertion order
	SwitchProfile string
	P4Examples    []string
	BSPPath       string
}

// BuildArgs parameterizes the build stage.
type BuildArgs struct {
	Jobs    int
	Targets []string
}

// DependenciesInstallArgs projects the plan into install-stage arguments.
func (p *Plan) DependenciesInstallArgs() InstallArgs {
	return InstallArgs{Jobs: p.Jobs, BSPPath: p.BSPPath}
}

// ConfigureArgs projects the plan into configure-stage arguments.
func (p *Plan) ConfigureArgs() ConfigureArgs {
	return ConfigureArgs{
		Options:       p.Profile.ConfigArgs(),
		SwitchProfile: p.Profile.SwitchProfile,
		P4Examples:    p.Profile.P4Examples,
		BSPPath:       p.BSPPath,
	}
}

// buildableComponents are the options that map directly to build targets.
var buildableComponents = []string{"switch", "bf-diags"}

// BuildArgs projects the plan into build-stage arguments: component
// targets for enabled options plus the deduplicated P4 example programs.
func (p *Plan) BuildArgs() BuildArgs {
	var targets []string
	for _, component := range buildableComponents {
		if p.Profile.IsEnabled(component) {
			targets = append(targets, component)
		}
	}
	seen := map[string]bool{}
	for _, program := range p.Profile.P4Examples {
		if !seen[program] {
			seen[program] = true
			targets = append(targets, program)
		}
	}
	return BuildArgs{Jobs: p.Jobs, Targets: targets}
}

// DescribeProfile writes a human-readable summary of the resolved profile.
func (p *Plan) DescribeProfile(w io.Writer) {
	fmt.Fprintln(w, "Resolved profile:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Option", "Enabled"})
	for _, s := range p.Profile.Settings() {
		table.Append([]string{s.Name, strconv.FormatBool(s.Enabled)})
	}
	table.Render()

	if p.Profile.SwitchProfile != "" {
		fmt.Fprintf(w, "Switch profile: %s\n", p.Profile.SwitchProfile)
	}
	if p.BSPPath != "" {
		fmt.Fprintf(w, "BSP path: %s\n", p.BSPPath)
	}
	if p.Profile.KernelDir != "" {
		fmt.Fprintf(w, "Kernel dir: %s\n", p.Profile.KernelDir)
	}
	if len(p.Profile.P4Examples) > 0 {
		fmt.Fprintf(w, "P4 examples: %s\n", strings.Join(p.Profile.P4Examples, ", "))
	}
	fmt.Fprintf(w, "Jobs: %d\n", p.Jobs)
}

// ShowCommands writes the standalone commands equivalent to applying this
// plan.
func (p *Plan) ShowCommands(w io.Writer) {
	fmt.Fprintln(w, "Commands to be executed:")

	install := fmt.Sprintf("  sdectl dependencies install --jobs=%d", p.Jobs)
	if p.BSPPath != "" {
		install += " --bsp-path=" + p.BSPPath
	}
	fmt.Fprintln(w, install)

	var tokens []string
	for _, s := range p.Profile.Settings() {
		token := s.Name
		if !s.Enabled {
			token = "^" + token
		}
		tokens = append(tokens, token)
	}
	configure := "  sdectl configure " + strings.Join(tokens, " ")
	if p.Profile.SwitchProfile != "" {
		configure += " --switch-profile=" + p.Profile.SwitchProfile
	}
	fmt.Fprintln(w, configure)

	build := p.BuildArgs()
	fmt.Fprintf(w, "  sdectl build --jobs=%d %s\n", build.Jobs, strings.Join(build.Targets, " "))
}
