package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdefoundry/sdectl/internal/apperrors"
	"github.com/sdefoundry/sdectl/internal/options"
	"github.com/sdefoundry/sdectl/internal/plan"
	"github.com/sdefoundry/sdectl/internal/profile"
	"github.com/sdefoundry/sdectl/internal/sysinfo"
	"github.com/sdefoundry/sdectl/internal/ui"
)

// profileCmd groups the profile subcommands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Build and install the SDE using profiles",
	Long: `Build and install the SDE using profiles.

If you want to build and install the SDE using profiles/switch-p4-16.yaml, run:
  sdectl profile apply profiles/switch-p4-16.yaml
or:
  sdectl profile apply switch-p4-16`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func stdoutPrinter() ui.Printer {
	return ui.Printer{W: os.Stdout}
}

// defaultSelections returns the catalog defaults with the two main
// components forced on, the starting point for a freshly created profile.
func defaultSelections(catalog *options.Catalog) []options.Selection {
	selections := catalog.DefaultSelections()
	for i := range selections {
		switch selections[i].Option.Name {
		case "switch", "bf-diags":
			selections[i].Enabled = true
		}
	}
	return selections
}

// applySelections writes selections into the profile in parenthood order,
// so a parent is always recorded before its dependents.
func applySelections(p *profile.Profile, selections []options.Selection) error {
	for _, sel := range options.SortedByParenthood(selections) {
		if err := p.SetOption(sel.Option.Name, sel.Enabled); err != nil {
			return err
		}
	}
	return nil
}

// applyOverrides enables or disables options on a loaded profile, in
// parenthood order. Unlike applySelections this cascades: enabling pulls
// in the parent chain and disabling is validated against dependents.
func applyOverrides(p *profile.Profile, overrides []string) error {
	catalog := p.Catalog()
	selections := make([]options.Selection, 0, len(overrides))
	for _, token := range overrides {
		sel, err := catalog.ParseSelection(token)
		if err != nil {
			return err
		}
		selections = append(selections, sel)
	}
	for _, sel := range options.SortedByParenthood(selections) {
		if sel.Enabled {
			if err := p.Enable(sel.Option.Name); err != nil {
				return err
			}
		} else if err := p.Disable(sel.Option.Name); err != nil {
			return err
		}
	}
	return nil
}

// createPlan loads a profile, applies overrides and resolves the plan.
func createPlan(fileArg, bspPath string, jobs int, overrides []string) (*plan.Plan, error) {
	printer := stdoutPrinter()

	path, err := profile.Resolve(fileArg, currentWorkspace().ProfilesDir)
	if err != nil {
		return nil, err
	}
	printer.Green("Loading profile from %s file...", path)

	prof, err := profile.Load(path, options.DefaultCatalog())
	if err != nil {
		return nil, err
	}

	if err := applyOverrides(prof, overrides); err != nil {
		return nil, err
	}
	if bspPath != "" {
		if err := prof.Enable("bsp"); err != nil {
			return nil, err
		}
	}

	printer.Green("Profile is correct.")
	printer.Separator()
	return plan.New(prof, bspPath, jobs), nil
}

// resolveJobs returns the explicit job count, or sizes one from host
// memory and CPUs, printing the numbers it used.
func resolveJobs(explicit int) (int, error) {
	if explicit > 0 {
		return explicit, nil
	}
	printer := stdoutPrinter()
	est, err := plan.EstimateJobs(sysinfo.Host{})
	if err != nil {
		var resErr *apperrors.ResourceError
		if errors.As(err, &resErr) {
			printer.Plain("Minimum recommended memory to run this build: %d MB", est.MinRequiredMB)
			printer.Plain("Memory on this system: %d MB -> too low", est.AvailableMB)
		}
		return 0, err
	}
	printer.Plain("Minimum recommended memory to run this build: %d MB", est.MinRequiredMB)
	printer.Plain("Memory on this system: %d MB -> enough for %d parallel jobs", est.AvailableMB, est.Jobs)
	slog.Debug("job count resolved", "jobs", est.Jobs, "available_mb", est.AvailableMB)
	return est.Jobs, nil
}

// displayJobs sizes the job count for read-only views. Unlike resolveJobs
// it never fails: a host too small to build can still describe a profile,
// so probe problems fall back to a single job.
func displayJobs(explicit int, prober sysinfo.Prober) int {
	if explicit > 0 {
		return explicit
	}
	est, err := plan.EstimateJobs(prober)
	if err != nil {
		return 1
	}
	return est.Jobs
}
